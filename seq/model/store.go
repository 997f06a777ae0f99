package model

import "fmt"

// Store owns the named channels of one diagram, all sampled on the same
// time grid. Channels live as long as the store; they are created once and
// only ever mutated through element accumulation.
type Store struct {
	grid     *TimeGrid
	channels map[string]*Channel
}

func NewStore(grid *TimeGrid) *Store {
	return &Store{
		grid:     grid,
		channels: make(map[string]*Channel),
	}
}

func (s *Store) Grid() *TimeGrid {
	return s.grid
}

// Create initializes an all-absent channel under the given name.
func (s *Store) Create(name string) (*Channel, error) {
	if _, ok := s.channels[name]; ok {
		return nil, fmt.Errorf("channel %q already exists", name)
	}
	ch := newChannel(name, s.grid)
	s.channels[name] = ch
	return ch, nil
}

// Channel looks up a channel by name.
func (s *Store) Channel(name string) (*Channel, error) {
	ch, ok := s.channels[name]
	if !ok {
		return nil, fmt.Errorf("unknown channel %q", name)
	}
	return ch, nil
}

// AddElement accumulates one element onto the named channel.
func (s *Store) AddElement(name string, wf Waveform, ampls ...float64) error {
	ch, err := s.Channel(name)
	if err != nil {
		return err
	}
	return ch.Add(wf, ampls...)
}
