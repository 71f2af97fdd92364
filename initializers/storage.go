package initializers

import (
	"github.com/CongregationConsole/storage"
)

var Store storage.Storage

// InitStorage picks the backend for the process. With a database URL the
// programs, program days and prayer requests are persisted in PostgreSQL;
// otherwise everything lives in memory.
func InitStorage(cfg Config) {
	if cfg.DBURL == "" {
		Store = storage.NewMemStorage(cfg.SampleData)
		Log.WithField("samples", cfg.SampleData).Warn("DB_URL not set, using in-memory storage")
		return
	}

	ConnectDB(cfg)
	if cfg.RunMigrations {
		if err := RunMigrations(SQLDB); err != nil {
			Log.WithError(err).Fatal("failed to migrate database")
		}
	}
	Store = storage.NewDatabaseStorage(DB, cfg.SampleData)
	Log.Info("using database-backed storage")
}
