// Package config loads the worldcraft configuration.
//
// Values come from defaults declared in `default:` struct tags and the process
// environment. An optional .env file is loaded first and overrides the
// environment it is merged into. Nested keys
// map to upper-case environment names with underscores, so recipes.source is
// read from RECIPES_SOURCE.
//
// # Sections
//
//   - Server: HTTP port and API key
//   - Storage: MinIO/S3 endpoint and bucket for the bucket source
//   - Database: MySQL or SQLite connection for the table source
//   - Log: level and format
//   - Recipes: definition source, catalog and anvil material
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Recipes.Source)
package config
