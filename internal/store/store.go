package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names, one per entity kind.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// Store is the document access layer. Validated entities go in as documents;
// exact-field-equality filters come back out. A nil filter matches everything.
type Store interface {
	CreateDocument(ctx context.Context, collection string, doc interface{}) error
	GetDocuments(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
}

// Status describes storage connectivity for the diagnostic endpoint.
type Status struct {
	Connected   bool
	Database    string
	Collections []string
}
