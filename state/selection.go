package state

import "sync"

// Selection is the focused-article store with a navigation history.
// The zero value is not usable; call NewSelection.
type Selection struct {
	mu sync.RWMutex

	current *int
	history []*int

	nextSub     int
	subscribers map[int]func(id int, ok bool)
}

// NewSelection creates an empty selection with no history
func NewSelection() *Selection {
	return &Selection{
		subscribers: make(map[int]func(int, bool)),
	}
}

// Selected returns the focused id, or ok=false when nothing is selected
func (s *Selection) Selected() (id int, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return 0, false
	}
	return *s.current, true
}

// Select focuses id and pushes the previous selection (possibly none) onto the history.
// The id is not validated.
func (s *Selection) Select(id int) {
	s.mu.Lock()
	s.history = append(s.history, s.current)
	s.current = &id
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	notify(subs, id, true)
}

// Back restores the previous selection. It returns false when the history is empty.
func (s *Selection) Back() bool {
	s.mu.Lock()
	if len(s.history) == 0 {
		s.mu.Unlock()
		return false
	}
	last := len(s.history) - 1
	s.current = s.history[last]
	s.history = s.history[:last]
	id, ok := deref(s.current)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	notify(subs, id, ok)
	return true
}

// Clear drops the selection and the history
func (s *Selection) Clear() {
	s.mu.Lock()
	s.current = nil
	s.history = nil
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	notify(subs, 0, false)
}

// Depth returns how many Back calls are possible
func (s *Selection) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// History returns the previously selected ids, oldest first.
// Entries where nothing was selected are reported as ok=false.
func (s *Selection) History() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.history))
	for i, h := range s.history {
		out[i].ID, out[i].OK = deref(h)
	}
	return out
}

// Entry is one step of the navigation history
type Entry struct {
	ID int
	OK bool
}

// Subscribe registers fn to be called after every change. Callbacks run on the
// writer's goroutine, outside the lock.
func (s *Selection) Subscribe(fn func(id int, ok bool)) (unsubscribe func()) {
	s.mu.Lock()
	key := s.nextSub
	s.nextSub++
	s.subscribers[key] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, key)
		s.mu.Unlock()
	}
}

// snapshotSubscribers must be called with the lock held
func (s *Selection) snapshotSubscribers() []func(int, bool) {
	subs := make([]func(int, bool), 0, len(s.subscribers))
	for k := 0; k < s.nextSub; k++ {
		if fn, ok := s.subscribers[k]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

func notify(subs []func(int, bool), id int, ok bool) {
	for _, fn := range subs {
		fn(id, ok)
	}
}

func deref(p *int) (int, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}
