package initializers

import (
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

var (
	DB    *goqu.Database
	SQLDB *sql.DB
)

func ConnectDB(cfg Config) {
	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		Log.WithError(err).Fatal("failed to open database")
	}

	err = db.Ping()
	if err != nil {
		Log.WithError(err).Fatal("failed to reach database")
	}

	SQLDB = db
	DB = goqu.New("postgres", db)
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		DB.Logger(Log.WithField("component", "goqu"))
	}
}
