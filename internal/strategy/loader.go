package strategy

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads strategy books from YAML and caches them by path.
type Loader struct {
	mu    sync.RWMutex
	cache map[string]Book
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]Book)}
}

// Load returns the book at path, reading it on first use.
func (l *Loader) Load(path string) (Book, error) {
	l.mu.RLock()
	if b, ok := l.cache[path]; ok {
		l.mu.RUnlock()
		return b, nil
	}
	l.mu.RUnlock()

	b, err := ReadBook(path)
	if err != nil {
		return Book{}, err
	}

	l.mu.Lock()
	l.cache[path] = b
	l.mu.Unlock()
	return b, nil
}

// Invalidate clears the cache. Call after the watcher reports a change.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]Book)
}

// ReadBook loads and checks a single book file.
func ReadBook(path string) (Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Book{}, fmt.Errorf("read strategy book: %w", err)
	}
	b, err := ParseBook(data)
	if err != nil {
		return Book{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return b, nil
}

// ParseBook decodes YAML, rejecting unknown keys.
func ParseBook(data []byte) (Book, error) {
	var b Book
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return Book{}, err
	}
	if err := b.check(); err != nil {
		return Book{}, err
	}
	return b, nil
}

// MarshalBook renders b as YAML.
func MarshalBook(b Book) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
