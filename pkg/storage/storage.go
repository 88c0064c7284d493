// Package storage provides the durable key-value store backing the case
// ledger. Documents are whole JSON files replaced atomically on write, so a
// concurrent reader never observes a partial document.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// KV is the storage contract the case store depends on. Get decodes the
// document stored under key into v and reports whether it existed.
// PutAtomic replaces the whole document or leaves the prior version intact.
type KV interface {
	Get(key string, v interface{}) (bool, error)
	PutAtomic(key string, v interface{}) error
}

// FileStore implements KV with one JSON file per key under a data directory
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns the store
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creando directorio de datos %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// path returns the on-disk file for a key
func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

// Get reads and decodes the document for key. A missing file is not an
// error: it reports exists=false and leaves v untouched.
func (fs *FileStore) Get(key string, v interface{}) (bool, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error leyendo %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("error decodificando %s: %w", key, err)
	}
	return true, nil
}

// PutAtomic writes the document to a temp file in the same directory and
// renames it over the destination. Rename is atomic on POSIX, so a crash
// mid-write leaves the previous version readable.
func (fs *FileStore) PutAtomic(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error codificando %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(fs.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creando archivo temporal para %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error escribiendo %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error cerrando archivo temporal de %s: %w", key, err)
	}

	if err := os.Rename(tmpName, fs.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error reemplazando %s: %w", key, err)
	}
	return nil
}
