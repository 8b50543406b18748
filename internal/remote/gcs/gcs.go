// Package gcs stores remote documents as JSON objects in a Google Cloud
// Storage bucket.
package gcs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/budget-tracker/backend/internal/remote"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const suffix = ".json"

type Options struct {
	Bucket string
	Prefix string

	// Endpoint overrides the storage API endpoint, e.g. for an emulator.
	// No credentials are used when it is set.
	Endpoint string
}

// Store keeps every document in its own object at {prefix}/{path}.json.
type Store struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

var _ remote.Store = (*Store)(nil)

// New creates the storage client. It assumes Application Default
// Credentials unless an endpoint is configured.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("a bucket name is required")
	}

	var clientOpts []option.ClientOption
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &Store{
		client: client,
		bucket: client.Bucket(opts.Bucket),
		prefix: strings.Trim(opts.Prefix, "/"),
	}, nil
}

func (s *Store) objectName(p string) string {
	return path.Join(s.prefix, remote.Join(p)) + suffix
}

func (s *Store) collectionPrefix(collection string) string {
	return path.Join(s.prefix, remote.Join(collection)) + "/"
}

// ReplaceCollection writes all documents, then deletes objects of the
// collection that are not part of docs.
func (s *Store) ReplaceCollection(ctx context.Context, collection string, docs []remote.Document) error {
	keep := make(map[string]bool, len(docs))
	for _, d := range docs {
		name := s.objectName(remote.Join(collection, d.ID))
		if err := s.write(ctx, name, d.Data); err != nil {
			return err
		}
		keep[name] = true
	}

	names, err := s.list(ctx, collection)
	if err != nil {
		return err
	}

	for _, name := range names {
		if keep[name] {
			continue
		}

		err := s.bucket.Object(name).Delete(ctx)
		if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
			return fmt.Errorf("%w: delete GCS object %q: %v", remote.ErrUnavailable, name, err)
		}
	}

	return nil
}

func (s *Store) ListCollection(ctx context.Context, collection string) ([]remote.Document, error) {
	names, err := s.list(ctx, collection)
	if err != nil {
		return nil, err
	}

	prefix := s.collectionPrefix(collection)
	docs := make([]remote.Document, 0, len(names))
	for _, name := range names {
		data, err := s.read(ctx, name)
		if errors.Is(err, remote.ErrNotFound) {
			// Deleted between listing and reading
			continue
		}
		if err != nil {
			return nil, err
		}

		docs = append(docs, remote.Document{
			ID:   strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix),
			Data: data,
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *Store) PutDocument(ctx context.Context, p string, data json.RawMessage) error {
	if _, _, err := remote.Split(p); err != nil {
		return err
	}

	return s.write(ctx, s.objectName(p), data)
}

func (s *Store) GetDocument(ctx context.Context, p string) (json.RawMessage, error) {
	if _, _, err := remote.Split(p); err != nil {
		return nil, err
	}

	return s.read(ctx, s.objectName(p))
}

func (s *Store) Close() error {
	return s.client.Close()
}

// list returns the names of the objects directly in the collection.
func (s *Store) list(ctx context.Context, collection string) ([]string, error) {
	it := s.bucket.Objects(ctx, &storage.Query{
		Prefix:    s.collectionPrefix(collection),
		Delimiter: "/",
	})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list GCS objects: %v", remote.ErrUnavailable, err)
		}

		// Synthetic entries for nested collections only carry a prefix
		if attrs.Name == "" || !strings.HasSuffix(attrs.Name, suffix) {
			continue
		}

		names = append(names, attrs.Name)
	}

	return names, nil
}

func (s *Store) write(ctx context.Context, name string, data []byte) error {
	w := s.bucket.Object(name).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("%w: write GCS object %q: %v", remote.ErrUnavailable, name, err)
	}

	// Close to finalize the upload
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: finalize upload of %q: %v", remote.ErrUnavailable, name, err)
	}

	return nil
}

func (s *Store) read(ctx context.Context, name string) (json.RawMessage, error) {
	r, err := s.bucket.Object(name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, remote.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open GCS object reader: %v", remote.ErrUnavailable, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read GCS object: %v", remote.ErrUnavailable, err)
	}

	return data, nil
}
