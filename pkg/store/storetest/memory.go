// Package storetest provides an in-memory store.Database for tests. Documents
// are round-tripped through BSON on the way in and out so callers observe the
// same decoding behavior they would get from a real cluster.
package storetest

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"local-chef-bazaar/pkg/store"
)

type (
	Database struct {
		mu          sync.Mutex
		collections map[string]*Collection
	}

	Collection struct {
		mu       sync.Mutex
		name     string
		docs     []bson.M
		failures []error
	}
)

func NewDatabase() *Database {
	return &Database{collections: map[string]*Collection{}}
}

func (d *Database) Collection(name string) store.Collection {
	return d.Coll(name)
}

// Coll returns the concrete collection so tests can seed or inspect it.
func (d *Database) Coll(name string) *Collection {
	d.mu.Lock()
	defer d.mu.Unlock()

	coll, ok := d.collections[name]
	if !ok {
		coll = &Collection{name: name}
		d.collections[name] = coll
	}
	return coll
}

// FailNext makes the next operation on the collection return err.
func (c *Collection) FailNext(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, err)
}

// Len reports how many documents are stored.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

// Docs returns copies of all stored documents in insertion order.
func (c *Collection) Docs() []bson.M {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]bson.M, 0, len(c.docs))
	for _, doc := range c.docs {
		out = append(out, copyDoc(doc))
	}
	return out
}

func (c *Collection) popFailure() error {
	if len(c.failures) == 0 {
		return nil
	}
	err := c.failures[0]
	c.failures = c.failures[1:]
	return err
}

func (c *Collection) InsertOne(_ context.Context, doc interface{}) (store.InsertAck, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.popFailure(); err != nil {
		return store.InsertAck{}, err
	}

	normalized, err := normalize(doc)
	if err != nil {
		return store.InsertAck{}, errors.Wrapf(err, "inserting document into '%s'", c.name)
	}
	id, ok := normalized["_id"]
	if !ok {
		id = primitive.NewObjectID()
		normalized["_id"] = id
	}
	c.docs = append(c.docs, normalized)

	return store.InsertAck{Acknowledged: true, InsertedID: id}, nil
}

func (c *Collection) Find(_ context.Context, filter bson.M, opts store.FindOptions, results interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.popFailure(); err != nil {
		return err
	}

	matched, err := c.match(filter)
	if err != nil {
		return err
	}
	if opts.SortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			return less(matched[i][opts.SortField], matched[j][opts.SortField])
		})
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	return decodeAll(matched, results)
}

func (c *Collection) FindOne(_ context.Context, filter bson.M, result interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.popFailure(); err != nil {
		return err
	}

	matched, err := c.match(filter)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return store.ErrNotFound
	}
	return decode(matched[0], result)
}

func (c *Collection) UpdateOne(_ context.Context, filter bson.M, set bson.M) (store.UpdateAck, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.popFailure(); err != nil {
		return store.UpdateAck{}, err
	}

	normalizedFilter, err := normalize(filter)
	if err != nil {
		return store.UpdateAck{}, err
	}
	normalizedSet, err := normalize(set)
	if err != nil {
		return store.UpdateAck{}, err
	}

	for _, doc := range c.docs {
		if !matches(doc, normalizedFilter) {
			continue
		}
		modified := false
		for key, value := range normalizedSet {
			if current, ok := doc[key]; !ok || !reflect.DeepEqual(current, value) {
				doc[key] = value
				modified = true
			}
		}
		ack := store.UpdateAck{Acknowledged: true, MatchedCount: 1}
		if modified {
			ack.ModifiedCount = 1
		}
		return ack, nil
	}
	return store.UpdateAck{Acknowledged: true}, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter bson.M) (store.DeleteAck, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.popFailure(); err != nil {
		return store.DeleteAck{}, err
	}

	normalizedFilter, err := normalize(filter)
	if err != nil {
		return store.DeleteAck{}, err
	}
	for i, doc := range c.docs {
		if matches(doc, normalizedFilter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return store.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return store.DeleteAck{Acknowledged: true}, nil
}

func (c *Collection) match(filter bson.M) ([]bson.M, error) {
	normalizedFilter, err := normalize(filter)
	if err != nil {
		return nil, err
	}
	var out []bson.M
	for _, doc := range c.docs {
		if matches(doc, normalizedFilter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// matches implements top-level equality filters, which is all the API issues.
func matches(doc, filter bson.M) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func normalize(v interface{}) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling document")
	}
	out := bson.M{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "unmarshalling document")
	}
	return out, nil
}

func copyDoc(doc bson.M) bson.M {
	out, err := normalize(doc)
	if err != nil {
		panic(err)
	}
	return out
}

func decode(doc bson.M, result interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshalling document")
	}
	return errors.Wrap(bson.Unmarshal(raw, result), "decoding document")
}

func decodeAll(docs []bson.M, results interface{}) error {
	resultsVal := reflect.ValueOf(results)
	if resultsVal.Kind() != reflect.Ptr || resultsVal.Elem().Kind() != reflect.Slice {
		return errors.New("results argument must be a pointer to a slice")
	}
	sliceVal := resultsVal.Elem()
	elemType := sliceVal.Type().Elem()

	out := reflect.MakeSlice(sliceVal.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	sliceVal.Set(out)
	return nil
}

// less orders values the way a single-field ascending sort does for the
// types JSON bodies produce: missing values first, then numbers, strings and
// dates compared within their own type.
func less(a, b interface{}) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch av := a.(type) {
	case string:
		return av < b.(string)
	case primitive.DateTime:
		return av < b.(primitive.DateTime)
	}
	if af, ok := toFloat(a); ok {
		bf, _ := toFloat(b)
		return af < bf
	}
	return false
}

func rank(v interface{}) int {
	switch v.(type) {
	case nil:
		return 0
	case int32, int64, float64:
		return 1
	case string:
		return 2
	case primitive.DateTime:
		return 4
	default:
		return 3
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
