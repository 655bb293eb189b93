// Package storage provides the key-value stores that back notes and settings.
package storage

import (
	"fmt"
	"strings"
)

// KV is a small synchronous key-value store. Get reports found=false for a
// key that was never written.
type KV interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Close() error
}

// Kind names a storage backend.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// ParseKind validates a backend name from config.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindFile, KindSQLite, KindMemory:
		return k, nil
	case "":
		return KindFile, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q (want file, sqlite or memory)", s)
	}
}

// Open creates the backend of the given kind rooted at dir.
func Open(kind Kind, dir string) (KV, error) {
	switch kind {
	case KindFile:
		return NewFile(dir)
	case KindSQLite:
		return NewSQLite(SQLitePath(dir))
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
