package syncer

import (
	"errors"
	"fmt"
)

var (
	ErrCorrupt = errors.New("stored data is corrupt")
	ErrRemote  = errors.New("remote synchronization failed")
)

// CorruptError reports a locally stored value that could not be decoded.
// The default value is used instead.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("value for %q is corrupt, using default: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() []error {
	return []error{ErrCorrupt, e.Err}
}

// RemoteError reports a failed call to the remote store. It never aborts an
// operation, the local cache stays authoritative.
type RemoteError struct {
	Collection string
	Operation  string
	Err        error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s of %s failed: %v", e.Operation, e.Collection, e.Err)
}

func (e *RemoteError) Unwrap() []error {
	return []error{ErrRemote, e.Err}
}
