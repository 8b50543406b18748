// Package memory is an in-process remote store, used for development and
// to simulate an unreliable connection.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/budget-tracker/backend/internal/remote"
)

type Store struct {
	mu      sync.Mutex
	docs    map[string]map[string]json.RawMessage
	offline error
	writes  int
}

var _ remote.Store = (*Store)(nil)

func New() *Store {
	return &Store{docs: make(map[string]map[string]json.RawMessage)}
}

// SetOffline makes all following calls fail with err wrapped in
// remote.ErrUnavailable. A nil error brings the store back online.
func (s *Store) SetOffline(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.offline = err
}

// Writes returns the number of successful write calls.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes
}

func (s *Store) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.offline != nil {
		return fmt.Errorf("%w: %v", remote.ErrUnavailable, s.offline)
	}

	return nil
}

func (s *Store) ReplaceCollection(ctx context.Context, collection string, docs []remote.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return err
	}

	c := make(map[string]json.RawMessage, len(docs))
	for _, d := range docs {
		c[d.ID] = append(json.RawMessage(nil), d.Data...)
	}

	s.docs[remote.Join(collection)] = c
	s.writes++
	return nil
}

func (s *Store) ListCollection(ctx context.Context, collection string) ([]remote.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	c := s.docs[remote.Join(collection)]
	docs := make([]remote.Document, 0, len(c))
	for id, data := range c {
		docs = append(docs, remote.Document{ID: id, Data: append(json.RawMessage(nil), data...)})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *Store) PutDocument(ctx context.Context, path string, data json.RawMessage) error {
	collection, id, err := remote.Split(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return err
	}

	if s.docs[collection] == nil {
		s.docs[collection] = make(map[string]json.RawMessage)
	}

	s.docs[collection][id] = append(json.RawMessage(nil), data...)
	s.writes++
	return nil
}

func (s *Store) GetDocument(ctx context.Context, path string) (json.RawMessage, error) {
	collection, id, err := remote.Split(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	data, ok := s.docs[collection][id]
	if !ok {
		return nil, remote.ErrNotFound
	}

	return append(json.RawMessage(nil), data...), nil
}

func (s *Store) Close() error {
	return nil
}
