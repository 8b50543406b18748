// Package syncer keeps the local cache and the remote document store in step.
//
// Every write goes to the local cache first and is then mirrored to the
// remote store on a best effort basis. Remote failures are logged and never
// returned to the caller.
package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/budget-tracker/backend/internal/remote"
	"github.com/budget-tracker/backend/internal/storage"
	"github.com/rs/zerolog/log"
)

// State is the synchronization state of a collection.
type State int

const (
	StateLocal State = iota
	StateSyncing
	StateSynced
)

func (s State) String() string {
	switch s {
	case StateSyncing:
		return "syncing"
	case StateSynced:
		return "synced"
	default:
		return "local"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Options struct {
	// Async mirrors writes to the remote store in the background.
	Async bool

	// Timeout bounds every remote call. Zero means no timeout.
	Timeout time.Duration
}

// Engine composes the local cache with an optional remote store.
type Engine struct {
	local  storage.KV
	remote remote.Store
	opts   Options

	mu      sync.Mutex
	states  map[string]State
	pending map[string]*mirror
	wg      sync.WaitGroup
}

// mirror is a remote write waiting to be executed.
type mirror struct {
	collection Collection
	profile    string
	data       []byte
}

// New returns an engine. A nil remote store keeps all data local.
func New(local storage.KV, rs remote.Store, opts Options) *Engine {
	return &Engine{
		local:   local,
		remote:  rs,
		opts:    opts,
		states:  make(map[string]State),
		pending: make(map[string]*mirror),
	}
}

// HasRemote reports whether a remote store is configured.
func (e *Engine) HasRemote() bool {
	return e.remote != nil
}

// State returns the synchronization state of the collection of a profile.
func (e *Engine) State(c Collection, profile string) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.states[c.localKey(profile)]
}

// States returns the state of all collections of a profile, keyed by
// collection name.
func (e *Engine) States(profile string) map[string]State {
	states := make(map[string]State, len(Collections))
	for _, c := range Collections {
		states[c.Name] = e.State(c, profile)
	}

	return states
}

func (e *Engine) setState(c Collection, profile string, s State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.states[c.localKey(profile)] = s
	syncState.WithLabelValues(c.Name).Set(float64(s))
}

// Save stores value as JSON in the local cache and mirrors it to the
// remote store. Only local failures are returned.
func (e *Engine) Save(ctx context.Context, c Collection, profile string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.Name, err)
	}

	if err := e.local.Set(c.localKey(profile), string(data)); err != nil {
		return fmt.Errorf("saving %s locally: %w", c.Name, err)
	}

	if e.remote == nil {
		e.setState(c, profile, StateLocal)
		return nil
	}

	m := &mirror{collection: c, profile: profile, data: data}
	e.setState(c, profile, StateSyncing)

	if !e.opts.Async {
		e.mirror(ctx, m)
		return nil
	}

	e.enqueue(context.WithoutCancel(ctx), m)
	return nil
}

// enqueue schedules a background mirror. Only the latest value per key is
// kept while a mirror for the key is in flight, so the remote store always
// converges to the latest local value.
func (e *Engine) enqueue(ctx context.Context, m *mirror) {
	key := m.collection.localKey(m.profile)

	e.mu.Lock()
	_, running := e.pending[key]
	e.pending[key] = m
	e.mu.Unlock()

	if running {
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		for {
			e.mu.Lock()
			next := e.pending[key]
			if next == nil {
				delete(e.pending, key)
				e.mu.Unlock()
				return
			}
			// Leave the key in the map to mark the worker as running
			e.pending[key] = nil
			e.mu.Unlock()

			e.mirror(ctx, next)
		}
	}()
}

// Wait blocks until all background mirrors are done.
func (e *Engine) Wait() {
	e.wg.Wait()
}

func (e *Engine) remoteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.opts.Timeout > 0 {
		return context.WithTimeout(ctx, e.opts.Timeout)
	}

	return context.WithCancel(ctx)
}

func (e *Engine) mirror(ctx context.Context, m *mirror) {
	ctx, cancel := e.remoteContext(ctx)
	defer cancel()

	var err error
	path := m.collection.remotePath(m.profile)

	if m.collection.IDField == "" {
		err = e.remote.PutDocument(ctx, path, m.data)
	} else {
		var docs []remote.Document
		docs, err = split(m.data, m.collection.IDField)
		if err == nil {
			err = e.remote.ReplaceCollection(ctx, path, docs)
		}
	}

	if err != nil {
		e.remoteFailed(m.collection, m.profile, "save", err)
		return
	}

	e.setState(m.collection, m.profile, StateSynced)
}

func (e *Engine) remoteFailed(c Collection, profile, operation string, err error) *RemoteError {
	remoteFailures.WithLabelValues(c.Name, operation).Inc()
	log.Warn().
		Err(err).
		Str("collection", c.Name).
		Str("profile", profile).
		Str("operation", operation).
		Msg("remote store")

	e.setState(c, profile, StateLocal)
	return &RemoteError{Collection: c.Name, Operation: operation, Err: err}
}

// split turns a JSON array into one document per element.
func split(data []byte, idField string) ([]remote.Document, error) {
	var elements []map[string]json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%s is not a JSON array of objects: %w", data, err)
	}

	docs := make([]remote.Document, 0, len(elements))
	for _, element := range elements {
		raw, ok := element[idField]
		if !ok {
			return nil, fmt.Errorf("element without %q field", idField)
		}

		id, err := documentID(raw)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(element)
		if err != nil {
			return nil, err
		}

		docs = append(docs, remote.Document{ID: id, Data: data})
	}

	return docs, nil
}

// documentID converts a JSON string or number into a document ID.
func documentID(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", errors.New("empty document ID")
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid document ID %s", raw)
	}

	return n.String(), nil
}

// join turns documents back into a JSON array. Numeric IDs are ordered
// numerically, the remote store orders them as strings.
func join(docs []remote.Document) json.RawMessage {
	ordered := make([]remote.Document, len(docs))
	copy(ordered, docs)

	numeric := true
	for _, d := range ordered {
		if _, err := strconv.ParseInt(d.ID, 10, 64); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		sortNumeric(ordered)
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, d := range ordered {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(d.Data)
	}
	buf.WriteByte(']')

	return buf.Bytes()
}
