package dbx

import (
	"fmt"

	"github.com/juju/mgo/v3/bson"
)

// MongoID returns the string form of a decoded _id value. Records written by
// this service carry string ids; documents created by other writers usually
// carry an ObjectId, which is rendered as its 24-character hex form.
func MongoID(v any) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case bson.ObjectId:
		return id.Hex(), nil
	default:
		return "", fmt.Errorf("unsupported _id type %T", v)
	}
}
