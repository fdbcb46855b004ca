// Package utils provides small string helpers shared by the inventory
// loaders and report generator.
package utils
