package db

import (
	"context"
	"embed"
	"time"

	"github.com/vibe-gaming/profile-service/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

const DuplicateEntry = 1062

//go:embed migrations/*.sql
var migrations embed.FS

func New(cfg config.Database) (*sqlx.DB, error) {
	conf, err := mysqlConfig(cfg)
	if err != nil {
		return nil, err
	}

	dbConn, err := sqlx.Connect("mysql", conf.FormatDSN())
	if err != nil {
		return nil, errors.Wrap(err, "db connection failed")
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)

	if err := dbConn.Ping(); err != nil {
		return nil, errors.Wrap(err, "db ping failed")
	}

	return dbConn, nil
}

func mysqlConfig(cfg config.Database) (*mysql.Config, error) {
	var conf *mysql.Config
	if cfg.DSN != "" {
		parsed, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return nil, errors.Wrap(err, "parse dsn failed")
		}
		conf = parsed
	} else {
		if cfg.Server == "" || cfg.DBName == "" || cfg.User == "" {
			return nil, errors.New("either DB_DSN or DB_SERVER, DB_NAME and DB_USER must be set")
		}
		location, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			return nil, errors.Wrap(err, "time load location failed")
		}
		conf = mysql.NewConfig()
		conf.Net = cfg.Net
		conf.Addr = cfg.Server
		conf.User = cfg.User
		conf.Passwd = cfg.Password
		conf.DBName = cfg.DBName
		conf.Timeout = cfg.Timeout
		conf.Loc = location
	}
	conf.ParseTime = true
	// rows affected must count matched rows, an UPDATE with unchanged values is still a hit
	conf.ClientFoundRows = true

	return conf, nil
}

// Migrate applies the embedded migrations.
func Migrate(ctx context.Context, dbConn *sqlx.DB) error {
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("mysql"); err != nil {
		return errors.Wrap(err, "set goose dialect failed")
	}

	if err := goose.UpContext(ctx, dbConn.DB, "migrations"); err != nil {
		return errors.Wrap(err, "apply migrations failed")
	}

	return nil
}

// IsDuplicateEntry reports whether err is a unique constraint violation.
func IsDuplicateEntry(err error) bool {
	var mysqlError *mysql.MySQLError
	return errors.As(err, &mysqlError) && mysqlError.Number == DuplicateEntry
}
