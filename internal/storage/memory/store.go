// Package memory is an in-process document store implementing the
// repository interfaces, used to exercise services without a Firestore project.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jobease/jobease-admin/internal/repository"
)

type serverTimestamp struct{}

// ServerTimestamp is stored wherever Firestore would resolve server time
var ServerTimestamp = serverTimestamp{}

// Store holds documents keyed by collection path then document ID
type Store struct {
	mu       sync.Mutex
	docs     map[string]map[string]map[string]any
	failures map[string]error
	nextID   int
}

// NewStore returns an empty Store
func NewStore() *Store {
	return &Store{
		docs:     make(map[string]map[string]map[string]any),
		failures: make(map[string]error),
	}
}

// Path joins collection and document segments: Path("candidates", "c1", "applications")
func Path(segments ...string) string {
	return strings.Join(segments, "/")
}

// Put seeds or overwrites a document
func (s *Store) Put(path, id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(path)[id] = clone(fields)
}

// Get returns a copy of a document
func (s *Store) Get(path, id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[path][id]
	if !ok {
		return nil, false
	}
	return clone(doc), true
}

// IDs lists document IDs of a collection in sorted order
func (s *Store) IDs(path string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedIDs(path)
}

// FailOn makes every operation on the collection path return err
func (s *Store) FailOn(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = err
}

func (s *Store) check(path string) error {
	if err, ok := s.failures[path]; ok {
		return err
	}
	return nil
}

func (s *Store) collection(path string) map[string]map[string]any {
	c, ok := s.docs[path]
	if !ok {
		c = make(map[string]map[string]any)
		s.docs[path] = c
	}
	return c
}

func (s *Store) sortedIDs(path string) []string {
	ids := make([]string, 0, len(s.docs[path]))
	for id := range s.docs[path] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) newID() string {
	s.nextID++
	return fmt.Sprintf("auto-%03d", s.nextID)
}

// update applies field changes to an existing document like Firestore Update
func (s *Store) update(path, id string, changes map[string]any) error {
	doc, ok := s.docs[path][id]
	if !ok {
		return fmt.Errorf("update %s/%s: %w", path, id, repository.ErrNotFound)
	}
	for k, v := range changes {
		if v == deleteField {
			delete(doc, k)
			continue
		}
		doc[k] = v
	}
	return nil
}

type deleteSentinel struct{}

var deleteField = deleteSentinel{}

// merge deep-merges src into dst like a merge set over leaf paths: an
// empty map is a leaf and replaces whatever dst held
func merge(dst, src map[string]any) {
	for k, v := range src {
		sm, srcIsMap := v.(map[string]any)
		dm, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap && len(sm) > 0 {
			merge(dm, sm)
			continue
		}
		dst[k] = cloneValue(v)
	}
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string{}, t...)
	default:
		return v
	}
}
