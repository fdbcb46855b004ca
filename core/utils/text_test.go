package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"laptop", "Laptop"},
		{"LAPTOP", "Laptop"},
		{"tower server", "Tower server"},
		{"écran", "Écran"},
		{"1tb drive", "1tb drive"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.in))
		})
	}
}

func TestTrimAll(t *testing.T) {
	assert.Equal(t, []string{"A1", "Acme", ""}, TrimAll([]string{" A1", "Acme ", "  "}))
}
