package scape

import "sort"

// Store is the ordered chunk sequence plus the inclusive horizontal range
// already planned. Chunks stay sorted by depth key at all times, bounds only
// ever widen, and nothing is ever discarded. The loader is the only writer;
// everyone else reads.
type Store struct {
	chunks  []Chunk
	xmin    float64
	xmax    float64
	planned bool
}

func NewStore() *Store {
	return &Store{}
}

// Insert places c so that chunks remain non-decreasing in Y. Equal depth
// keys keep insertion order.
func (s *Store) Insert(c Chunk) {
	i := sort.Search(len(s.chunks), func(i int) bool {
		return s.chunks[i].Y > c.Y
	})
	s.chunks = append(s.chunks, Chunk{})
	copy(s.chunks[i+1:], s.chunks[i:])
	s.chunks[i] = c
}

// Chunks returns the depth-ordered sequence. The slice is shared; callers
// must treat it as read-only.
func (s *Store) Chunks() []Chunk {
	return s.chunks
}

func (s *Store) Len() int {
	return len(s.chunks)
}

// Bounds reports the planned horizontal range. ok is false until the first
// coverage pass fixes an origin.
func (s *Store) Bounds() (xmin, xmax float64, ok bool) {
	return s.xmin, s.xmax, s.planned
}

func (s *Store) initBounds(x float64) {
	if !s.planned {
		s.xmin = x
		s.xmax = x
		s.planned = true
	}
}

func (s *Store) extendRight(x float64) {
	if s.planned && x > s.xmax {
		s.xmax = x
	}
}

func (s *Store) extendLeft(x float64) {
	if s.planned && x < s.xmin {
		s.xmin = x
	}
}
