package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/juju/mgo/v3"
)

// Supported DSN schemes.
const (
	SchemePostgres   = "postgres"
	SchemePostgreSQL = "postgresql"
	SchemeMongo      = "mongodb"
	SchemeMemory     = "memory"
)

const dialTimeout = 10 * time.Second

// seams for tests
var (
	sqlOpen           = sql.Open
	mongoDialWithInfo = mgo.DialWithInfo
)

// Scheme returns the backend scheme of dsn, or an error wrapping
// common.ErrStartupConfig when the scheme is not supported.
func Scheme(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("%w: invalid database DSN: %v", common.ErrStartupConfig, err)
	}
	switch u.Scheme {
	case SchemePostgres, SchemePostgreSQL, SchemeMongo, SchemeMemory:
		return u.Scheme, nil
	default:
		return "", fmt.Errorf("%w: unsupported database DSN scheme %q", common.ErrStartupConfig, u.Scheme)
	}
}

// Open connects to the backend named by the DSN scheme. dbName selects the
// MongoDB database; PostgreSQL takes its database from the DSN itself.
func Open(ctx context.Context, dsn, dbName string) (RepositoryManager, error) {
	scheme, err := Scheme(dsn)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case SchemeMemory:
		return NewInMemoryRepositoryManager(), nil

	case SchemeMongo:
		info, err := mgo.ParseURL(dsn)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid MongoDB DSN: %v", common.ErrStartupConfig, err)
		}
		if info.Timeout == 0 {
			info.Timeout = dialTimeout
		}
		session, err := mongoDialWithInfo(info)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		session.SetMode(mgo.Monotonic, true)
		return NewMongoRepositoryManager(session, dbName), nil

	default:
		db, err := sqlOpen("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return NewPostgresRepositoryManager(db), nil
	}
}
