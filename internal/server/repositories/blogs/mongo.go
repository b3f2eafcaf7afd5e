package blogs

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogapi/internal/dbx"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/juju/mgo/v3"
)

// CollectionName is the MongoDB collection holding blog documents.
const CollectionName = "blogs"

// blogDocument is the stored form of a blog post; see users.userDocument.
type blogDocument struct {
	ID          any `bson:"_id"`
	models.Blog `bson:",inline"`
}

type MongoRepository struct {
	session *mgo.Session
	dbName  string
}

func NewMongoRepository(session *mgo.Session, dbName string) *MongoRepository {
	return &MongoRepository{session: session, dbName: dbName}
}

func (r *MongoRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.session.Copy()
	defer s.Close()

	if err := s.DB(r.dbName).C(CollectionName).Insert(&blogDocument{ID: blog.ID, Blog: *blog}); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return blog, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.Blog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.session.Copy()
	defer s.Close()

	var docs []blogDocument
	if err := s.DB(r.dbName).C(CollectionName).Find(nil).All(&docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fromDocuments(docs)
}

func fromDocuments(docs []blogDocument) ([]*models.Blog, error) {
	result := make([]*models.Blog, 0, len(docs))
	for i := range docs {
		id, err := dbx.MongoID(docs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		b := docs[i].Blog
		b.ID = id
		result = append(result, &b)
	}
	return result, nil
}
