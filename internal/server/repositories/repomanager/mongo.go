package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogapi/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/users"
	"github.com/juju/mgo/v3"
)

// MongoRepositoryManager serves both collections from one root session.
type MongoRepositoryManager struct {
	session *mgo.Session
	dbName  string
}

func NewMongoRepositoryManager(session *mgo.Session, dbName string) *MongoRepositoryManager {
	return &MongoRepositoryManager{session: session, dbName: dbName}
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return users.NewMongoRepository(m.session, m.dbName)
}

func (m *MongoRepositoryManager) Blogs() blogs.Repository {
	return blogs.NewMongoRepository(m.session, m.dbName)
}

// RunMigrations ensures the unique index on users.email exists.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := m.session.Copy()
	defer s.Close()

	idx := mgo.Index{
		Key:        []string{"email"},
		Unique:     true,
		Background: false,
	}
	if err := s.DB(m.dbName).C(users.CollectionName).EnsureIndex(idx); err != nil {
		return fmt.Errorf("ensure users.email index: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Close() error {
	m.session.Close()
	return nil
}
