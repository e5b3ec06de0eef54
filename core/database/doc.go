// Package database handles database connections and schema inspection.
//
// It wraps GORM and builds the dialector from configuration: sqlite (a local
// file, the default, so the CLI needs no server) or MySQL.
//
// # Schema Inspection
//
// GetTableColumns reads a table's columns (SHOW COLUMNS on MySQL, PRAGMA
// table_info on sqlite). MissingColumns compares them with an expected list;
// the history package uses it to refuse a domain_checks table it cannot write.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "domain_checks", []string{"name", "outcome"})
package database
