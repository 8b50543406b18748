package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/budget-tracker/backend/internal/remote"
	"github.com/budget-tracker/backend/internal/storage"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Source tells where a loaded value came from.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceLocal   Source = "local"
	SourceDefault Source = "default"
)

// Result describes how a value was loaded.
type Result struct {
	Source Source

	// Warning is set when data could not be used, e.g. a *CorruptError or
	// *RemoteError. It is informational only.
	Warning error
}

// Load reads the collection of a profile.
//
// Non-empty remote data is preferred and refreshes the local cache. Without
// remote data the local cache is used. When the local value is missing the
// default is returned, when it is corrupt the default is returned together
// with a *CorruptError warning. Only failures of the local cache are
// returned as error.
func Load[T any](ctx context.Context, e *Engine, c Collection, profile string, def T) (T, Result, error) {
	var result Result

	if e.remote != nil {
		value, ok, warning := loadRemote[T](ctx, e, c, profile)
		if ok {
			return value, Result{Source: SourceRemote}, nil
		}
		result.Warning = warning
	}

	raw, err := e.local.Get(c.localKey(profile))
	if errors.Is(err, storage.ErrNotFound) {
		result.Source = SourceDefault
		return def, result, nil
	}
	if err != nil {
		return def, result, fmt.Errorf("loading %s locally: %w", c.Name, err)
	}

	if isEmpty([]byte(raw)) {
		result.Source = SourceDefault
		return def, result, nil
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		corruptValues.WithLabelValues(c.Name).Inc()
		log.Warn().Err(err).Str("collection", c.Name).Str("profile", profile).Msg("corrupt local value, using default")

		result.Source = SourceDefault
		result.Warning = &CorruptError{Key: c.localKey(profile), Err: err}
		return def, result, nil
	}

	result.Source = SourceLocal
	return value, result, nil
}

// loadRemote returns the remote value if there is a usable one.
func loadRemote[T any](ctx context.Context, e *Engine, c Collection, profile string) (T, bool, error) {
	var value T

	ctx, cancel := e.remoteContext(ctx)
	defer cancel()

	raw, err := fetch(ctx, e.remote, c, profile)
	if err != nil {
		return value, false, e.remoteFailed(c, profile, "load", err)
	}

	if isEmpty(raw) {
		// The remote store does not mirror the local data yet
		e.setState(c, profile, StateLocal)
		return value, false, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, e.remoteFailed(c, profile, "decode", err)
	}

	if err := e.local.Set(c.localKey(profile), string(raw)); err != nil {
		log.Error().Err(err).Str("collection", c.Name).Str("profile", profile).Msg("refreshing local cache")
	}

	e.setState(c, profile, StateSynced)
	return value, true, nil
}

func fetch(ctx context.Context, rs remote.Store, c Collection, profile string) (json.RawMessage, error) {
	path := c.remotePath(profile)

	if c.IDField == "" {
		data, err := rs.GetDocument(ctx, path)
		if errors.Is(err, remote.ErrNotFound) {
			return nil, nil
		}
		return data, err
	}

	docs, err := rs.ListCollection(ctx, path)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, nil
	}

	return join(docs), nil
}

// isEmpty reports whether raw JSON carries no data.
func isEmpty(raw []byte) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "{}", "[]", `""`:
		return true
	}
	return false
}

func sortNumeric(docs []remote.Document) {
	slices.SortStableFunc(docs, func(a, b remote.Document) int {
		x, _ := strconv.ParseInt(a.ID, 10, 64)
		y, _ := strconv.ParseInt(b.ID, 10, 64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
}
