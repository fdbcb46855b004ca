// Package database handles database connections.
//
// It wraps GORM to configure either a MySQL connection (production) or a
// SQLite database (local runs and tests) from the application's configuration.
// The snapshot command uses it to persist the merged inventory.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("database connection required: %w", err)
//	}
package database
