package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/dbx"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/juju/mgo/v3"
	"github.com/juju/mgo/v3/bson"
)

// CollectionName is the MongoDB collection holding user documents.
const CollectionName = "users"

// userDocument is the stored form of a user. _id is kept untyped so that
// ObjectId keys written by other clients decode as well as our string ids.
type userDocument struct {
	ID          any `bson:"_id"`
	models.User `bson:",inline"`
}

func (d *userDocument) toModel() (*models.User, error) {
	id, err := dbx.MongoID(d.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	u := d.User
	u.ID = id
	return &u, nil
}

// MongoRepository stores users as documents. Each call works on its own copy
// of the root session so concurrent requests do not share a socket.
type MongoRepository struct {
	session *mgo.Session
	dbName  string
}

func NewMongoRepository(session *mgo.Session, dbName string) *MongoRepository {
	return &MongoRepository{session: session, dbName: dbName}
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.session.Copy()
	defer s.Close()

	if err := s.DB(r.dbName).C(CollectionName).Insert(&userDocument{ID: user.ID, User: *user}); err != nil {
		if mgo.IsDup(err) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.session.Copy()
	defer s.Close()

	var doc userDocument
	err := s.DB(r.dbName).C(CollectionName).Find(bson.M{"email": email}).One(&doc)
	if err != nil {
		if err == mgo.ErrNotFound {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc.toModel()
}
