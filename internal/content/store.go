package content

import (
	"sync"
	"sync/atomic"

	"howitworks/internal/steps"
	"howitworks/pkg/logging"
)

// Store holds the current section. Readers never block: the section is an
// immutable value swapped atomically on reload.
type Store struct {
	path    string
	current atomic.Pointer[steps.Section]

	mu        sync.Mutex
	listeners []func(steps.Section)
}

// NewStore loads path, or the built-in section when path is empty.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if path == "" {
		sec := steps.DefaultSection()
		s.current.Store(&sec)
		return s, nil
	}
	sec, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	s.current.Store(&sec)
	logging.Info("Content", "Loaded %d steps from %s", sec.Steps.Len(), path)
	return s, nil
}

// NewStaticStore wraps a fixed section. Reload is a no-op.
func NewStaticStore(sec steps.Section) *Store {
	s := &Store{}
	s.current.Store(&sec)
	return s
}

// Path returns the content file path, empty for built-in or static content.
func (s *Store) Path() string {
	return s.path
}

// Section returns the current section.
func (s *Store) Section() steps.Section {
	return *s.current.Load()
}

// OnReload registers fn to be called with the new section after every
// successful reload.
func (s *Store) OnReload(fn func(steps.Section)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload re-reads the content file. On error the previous section stays in place.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	sec, err := LoadFile(s.path)
	if err != nil {
		logging.Warn("Content", "Keeping previous content, reload of %s failed: %v", s.path, err)
		return err
	}
	s.current.Store(&sec)
	logging.Info("Content", "Reloaded %d steps from %s", sec.Steps.Len(), s.path)

	s.mu.Lock()
	listeners := make([]func(steps.Section), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(sec)
	}
	return nil
}
