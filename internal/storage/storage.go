package storage

import (
	"context"
	"io"
)

// Package storage contains the sink abstraction for uploaded log documents.
// Implementations write each document exactly once under a caller-chosen key;
// nothing in this system reads a document back after writing it.

// PutOptions define optional parameters for storing an object.
// Size should be the exact number of bytes if known; set to -1 when unknown.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// Storage is a write-once sink for log documents.
type Storage interface {
	// Put stores the reader's content under the given key. An existing object
	// with the same key is overwritten.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
}
