// Package database handles the optional MySQL connection used for the audit trail.
//
// It wraps GORM to configure MySQL connections from the application's configuration.
// The connection is opt-in (database.enabled); Connect returns ErrDisabled otherwise and
// callers continue without auditing.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
