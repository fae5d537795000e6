// Package database opens the optional run history database and inspects its schema.
//
// Connect wraps GORM and picks the dialector from the configured driver: mysql,
// postgres or sqlite. sqlite also backs tests through ":memory:".
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns on every supported dialect, and
// MissingColumns compares them with what a model expects. The history command uses
// it to report a stale schema before writing runs.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Run history disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "runs", history.Columns())
package database
