// Package database connects to the SQL database that can hold recipe
// definitions and inspects table schemas.
//
// It wraps GORM with the MySQL and SQLite dialects. SQLite is mostly used for
// local development and tests (":memory:").
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on either dialect. The table
// definition source uses it to fail fast with a clear error when the
// recipe_definitions table is missing a column, instead of surfacing a raw
// SQL error mid-load.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "recipe_definitions")
package database
