// Package database handles the sync-run database connection.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration. The only schema owned by this
// service is the sync_runs table kept by the catalog feature's run store; the
// connection helper therefore also exposes AutoMigrate plumbing for it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
