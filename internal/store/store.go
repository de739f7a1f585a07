// Package store persists personas as a single JSON file mapping id to
// record. Every mutation rewrites the whole file through a temp-file +
// rename swap, so readers never observe a partial write and a crash
// mid-save leaves the previous contents intact. The whole-file rewrite is
// a deliberate design for small stores (a few thousand records), not an
// accident to optimize away.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/zarlcorp/zpersona/internal/persona"
)

const storeFile = "personas.json"

// ErrNotFound is returned when a persona does not exist.
var ErrNotFound = errors.New("persona not found")

// Generator rebuilds a persona from its stored seed. Implemented by
// persona.Assembler.
type Generator interface {
	Regenerate(p persona.Persona) (persona.Persona, error)
}

// fileOps is the filesystem seam; tests inject write and rename failures
// through it.
type fileOps interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
	Rename(oldpath, newpath string) error
	MkdirAll(path string, perm os.FileMode) error
}

type osFS struct{}

func (osFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
func (osFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}
func (osFS) Rename(oldpath, newpath string) error         { return os.Rename(oldpath, newpath) }
func (osFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

// Store manages the persona file in one data directory. Mutations are
// serialized by an in-process mutex for the full read-modify-write-swap
// sequence; the process is assumed to be the sole writer of its data
// directory.
type Store struct {
	mu   sync.Mutex
	path string
	fs   fileOps
}

// Open creates the data directory if needed and returns a store over it.
func Open(dir string) (*Store, error) {
	return open(dir, osFS{})
}

func open(dir string, ops fileOps) (*Store, error) {
	if err := ops.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("open store: create data dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, storeFile), fs: ops}, nil
}

// LoadAll returns every saved persona keyed by id. A missing backing file
// is an empty store; so is a corrupt one — the parse failure is logged at
// warning level and the store fails soft, favoring availability (the next
// successful Save overwrites the corrupt file).
func (s *Store) LoadAll() map[string]persona.Persona {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("persona store unreadable, treating as empty", "path", s.path, "err", err)
		}
		return map[string]persona.Persona{}
	}

	personas := map[string]persona.Persona{}
	if err := json.Unmarshal(data, &personas); err != nil {
		slog.Warn("persona store corrupt, treating as empty", "path", s.path, "err", err)
		return map[string]persona.Persona{}
	}
	return personas
}

// Load returns a single persona by id, or ErrNotFound.
func (s *Store) Load(id string) (persona.Persona, error) {
	p, ok := s.LoadAll()[id]
	if !ok {
		return persona.Persona{}, ErrNotFound
	}
	return p, nil
}

// Save upserts a persona by id and returns the id. The prior file state
// survives any write failure because the new contents only replace it on
// a successful rename.
func (s *Store) Save(p persona.Persona) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	personas := s.LoadAll()
	personas[p.ID] = p
	if err := s.writeAll(personas); err != nil {
		return "", err
	}
	return p.ID, nil
}

// Delete removes a persona by id. It reports whether a record existed; a
// delete of an absent id leaves the file untouched.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	personas := s.LoadAll()
	if _, ok := personas[id]; !ok {
		return false, nil
	}
	delete(personas, id)
	if err := s.writeAll(personas); err != nil {
		return false, err
	}
	return true, nil
}

// List returns summaries of all saved personas, newest first.
func (s *Store) List() []persona.Summary {
	personas := s.LoadAll()

	out := make([]persona.Summary, 0, len(personas))
	for _, p := range personas {
		out = append(out, p.Summary())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Regenerate rebuilds the persona stored under id from its recorded seed,
// persists the result under the same id, and returns it. The whole
// load-rebuild-save sequence runs under the write lock so concurrent
// mutations cannot interleave with it.
func (s *Store) Regenerate(id string, g Generator) (persona.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	personas := s.LoadAll()
	old, ok := personas[id]
	if !ok {
		return persona.Persona{}, ErrNotFound
	}

	p, err := g.Regenerate(old)
	if err != nil {
		return persona.Persona{}, err
	}

	personas[p.ID] = p
	if err := s.writeAll(personas); err != nil {
		return persona.Persona{}, err
	}
	return p, nil
}

// writeAll marshals the full collection and swaps it into place
// atomically. Callers hold s.mu.
func (s *Store) writeAll(personas map[string]persona.Persona) error {
	data, err := json.MarshalIndent(personas, "", "  ")
	if err != nil {
		return fmt.Errorf("save personas: marshal: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("save personas: write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("save personas: swap into place: %w", err)
	}
	return nil
}
