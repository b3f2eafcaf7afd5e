package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/juju/mgo/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheme(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost:5432/db", want: SchemePostgres},
		{dsn: "postgresql://localhost/db", want: SchemePostgreSQL},
		{dsn: "mongodb://localhost:27017", want: SchemeMongo},
		{dsn: "memory://", want: SchemeMemory},
		{dsn: "mysql://localhost", wantErr: true},
		{dsn: "", wantErr: true},
		{dsn: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := Scheme(tt.dsn)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrStartupConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_Memory(t *testing.T) {
	m, err := Open(context.Background(), "memory://", "authentication")
	require.NoError(t, err)
	defer m.Close()

	_, ok := m.(*InMemoryRepositoryManager)
	assert.True(t, ok)
	assert.NoError(t, m.RunMigrations(context.Background()))
	assert.Same(t, m.Users(), m.Users())
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), "redis://localhost", "x")
	assert.ErrorIs(t, err, common.ErrStartupConfig)
}

func TestOpen_Postgres_PingsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()

	orig := sqlOpen
	var gotDriver, gotDSN string
	sqlOpen = func(driverName, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driverName, dsn
		return db, nil
	}
	defer func() { sqlOpen = orig }()

	m, err := Open(context.Background(), "postgres://u:p@localhost/blog", "ignored")
	require.NoError(t, err)

	_, ok := m.(*PostgresRepositoryManager)
	assert.True(t, ok)
	assert.Equal(t, "pgx", gotDriver)
	assert.Equal(t, "postgres://u:p@localhost/blog", gotDSN)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_Postgres_PingFailureClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	orig := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return db, nil }
	defer func() { sqlOpen = orig }()

	_, err = Open(context.Background(), "postgresql://localhost/blog", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping postgres")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_Postgres_OpenError(t *testing.T) {
	orig := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("no driver") }
	defer func() { sqlOpen = orig }()

	_, err := Open(context.Background(), "postgres://localhost/blog", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open postgres: no driver")
}

func TestOpen_Mongo_DialError(t *testing.T) {
	orig := mongoDialWithInfo
	var gotInfo *mgo.DialInfo
	mongoDialWithInfo = func(info *mgo.DialInfo) (*mgo.Session, error) {
		gotInfo = info
		return nil, errors.New("no reachable servers")
	}
	defer func() { mongoDialWithInfo = orig }()

	_, err := Open(context.Background(), "mongodb://db.example:27017", "authentication")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect mongodb")
	require.NotNil(t, gotInfo)
	assert.Equal(t, []string{"db.example:27017"}, gotInfo.Addrs)
	assert.Equal(t, dialTimeout, gotInfo.Timeout)
}
