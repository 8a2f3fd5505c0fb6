package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 10 * time.Second
)

// ErrNotConfigured is returned on writes when no database is attached.
var ErrNotConfigured = errors.New("database not configured")

// MongoStore implements Store over a mongo database handle. The handle may
// be nil: the service starts without a database and degrades instead of
// failing every request. In that state writes fail with ErrNotConfigured
// and reads return empty results.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// CreateDocument inserts the entity as a new document. Duplicate
// submissions create duplicate documents; there is no idempotency key.
func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc interface{}) error {
	if s.db == nil {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

// GetDocuments returns every document matching all filter fields exactly,
// in the store's natural order.
func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if s.db == nil {
		return []bson.M{}, nil
	}

	if filter == nil {
		filter = bson.M{}
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// Status reports connectivity for GET /test. A collection listing failure
// is reported inside the listing itself rather than failing the probe.
func (s *MongoStore) Status(ctx context.Context) Status {
	if s.db == nil {
		return Status{}
	}

	st := Status{
		Connected:   true,
		Database:    s.db.Name(),
		Collections: []string{},
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		st.Collections = []string{"error: " + truncate(err.Error(), 80)}
		return st
	}
	st.Collections = names

	return st
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
