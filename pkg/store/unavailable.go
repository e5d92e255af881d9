package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// unavailableDatabase stands in for the cluster when the client could not be
// created at startup. The server keeps running and every store call fails
// with the original connection error.
type (
	unavailableDatabase struct {
		err error
	}

	unavailableCollection struct {
		name string
		err  error
	}
)

func NewUnavailableDatabase(err error) Database {
	return &unavailableDatabase{err: err}
}

func (d *unavailableDatabase) Collection(name string) Collection {
	return &unavailableCollection{name: name, err: d.err}
}

func (c *unavailableCollection) fail() error {
	return errors.Wrapf(c.err, "database unavailable for '%s'", c.name)
}

func (c *unavailableCollection) InsertOne(context.Context, interface{}) (InsertAck, error) {
	return InsertAck{}, c.fail()
}

func (c *unavailableCollection) Find(context.Context, bson.M, FindOptions, interface{}) error {
	return c.fail()
}

func (c *unavailableCollection) FindOne(context.Context, bson.M, interface{}) error {
	return c.fail()
}

func (c *unavailableCollection) UpdateOne(context.Context, bson.M, bson.M) (UpdateAck, error) {
	return UpdateAck{}, c.fail()
}

func (c *unavailableCollection) DeleteOne(context.Context, bson.M) (DeleteAck, error) {
	return DeleteAck{}, c.fail()
}
