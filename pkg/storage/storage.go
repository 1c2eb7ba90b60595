// Package storage is the resume storage collaborator. The core hands it raw
// bytes and gets back an opaque reference; it never inspects file contents
// beyond upload validation.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when the reference does not resolve.
var ErrNotFound = errors.New("storage: object not found")

type ResumeStore interface {
	// Store persists the file and returns an opaque reference. The original
	// filename is only used for its extension.
	Store(ctx context.Context, filename string, data []byte) (string, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Remove(ctx context.Context, ref string) error
}
