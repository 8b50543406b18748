// Package remote defines the document store the local cache is mirrored to.
//
// Documents are addressed by slash separated paths. A collection is the
// set of documents directly below a path, e.g. the documents of the
// collection "profiles/hemank/transactions" are
// "profiles/hemank/transactions/{id}".
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strings"
)

var (
	ErrNotFound    = errors.New("the remote document does not exist")
	ErrUnavailable = errors.New("the remote store is unavailable")
	ErrInvalidPath = errors.New("invalid remote document path")
)

// Document is a single JSON document of a collection.
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Store is a remote document store.
type Store interface {
	// ReplaceCollection makes docs the only documents of the collection.
	ReplaceCollection(ctx context.Context, collection string, docs []Document) error

	// ListCollection returns all documents of the collection ordered by ID.
	// A collection without documents is empty, not an error.
	ListCollection(ctx context.Context, collection string) ([]Document, error)

	PutDocument(ctx context.Context, path string, data json.RawMessage) error

	// GetDocument returns ErrNotFound for missing documents.
	GetDocument(ctx context.Context, path string) (json.RawMessage, error)

	Close() error
}

// Split separates a document path into its collection and ID.
func Split(p string) (collection, id string, err error) {
	p = strings.Trim(p, "/")
	collection, id = path.Split(p)
	collection = strings.TrimSuffix(collection, "/")

	if collection == "" || id == "" {
		return "", "", ErrInvalidPath
	}

	return collection, id, nil
}

// Join builds a document path from its elements.
func Join(elem ...string) string {
	return strings.Trim(path.Join(elem...), "/")
}
