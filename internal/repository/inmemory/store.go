package inmemory

import (
	"fmt"
	"strconv"
	"sync"

	ierr "go-firestore-catalog/internal/errors"
)

// store keeps documents in insertion order behind a mutex.
type store[T any] struct {
	mu    sync.RWMutex
	label string
	next  int
	ids   []string
	docs  map[string]T
	getId func(T) string
	setId func(*T, string)

	// failWith makes every call return the error; used to simulate an unavailable backend
	failWith error
}

func newStore[T any](label string, getId func(T) string, setId func(*T, string)) *store[T] {
	return &store[T]{
		label: label,
		docs:  make(map[string]T),
		getId: getId,
		setId: setId,
	}
}

func (s *store[T]) fail() error {
	if s.failWith != nil {
		return fmt.Errorf("%s store: %w", s.label, s.failWith)
	}
	return nil
}

func (s *store[T]) seed(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		id := s.getId(item)
		if id == "" {
			id = s.newId()
			s.setId(&item, id)
		}
		if _, ok := s.docs[id]; !ok {
			s.ids = append(s.ids, id)
		}
		s.docs[id] = item
	}
}

func (s *store[T]) newId() string {
	for {
		s.next++
		id := s.label + "-" + strconv.Itoa(s.next)
		if _, taken := s.docs[id]; !taken {
			return id
		}
	}
}

func (s *store[T]) list() ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.fail(); err != nil {
		return nil, err
	}

	items := make([]T, 0, len(s.ids))
	for _, id := range s.ids {
		items = append(items, s.docs[id])
	}
	return items, nil
}

func (s *store[T]) get(id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.fail(); err != nil {
		return nil, err
	}

	item, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w, id: %s", s.label, ierr.NotFound, id)
	}
	return &item, nil
}

func (s *store[T]) create(item T) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(); err != nil {
		return "", err
	}

	id := s.newId()
	s.setId(&item, id)
	s.ids = append(s.ids, id)
	s.docs[id] = item
	return id, nil
}

func (s *store[T]) update(id string, fn func(*T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(); err != nil {
		return err
	}

	item, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("update %s: %w, id: %s", s.label, ierr.NotFound, id)
	}
	fn(&item)
	s.docs[id] = item
	return nil
}

// delete is a no-op for unknown ids, matching firestore.
func (s *store[T]) delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail(); err != nil {
		return err
	}

	if _, ok := s.docs[id]; !ok {
		return nil
	}
	delete(s.docs, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *store[T]) setFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}
