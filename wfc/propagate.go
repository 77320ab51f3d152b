package wfc

import (
	"math"

	"github.com/textureforge/overlapwfc/rules"
)

// neighborOffset returns the (dx, dy) step from a cell to its neighbor
// in direction d, matching the offsets raster.Overlap uses to compare
// pattern content across that same direction.
func neighborOffset(d rules.Direction) (dx, dy int) {
	switch d {
	case rules.Up:
		return 0, -1
	case rules.Down:
		return 0, 1
	case rules.Left:
		return -1, 0
	case rules.Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// seedNeighbors enqueues a propagation entry from src toward every
// in-bounds neighbor, in the fixed Up/Down/Left/Right order, after src
// has just collapsed or otherwise narrowed.
func (s *Solver) seedNeighbors(src int) {
	x, y := s.coordinate(src)
	for _, d := range [4]rules.Direction{rules.Up, rules.Down, rules.Left, rules.Right} {
		dx, dy := neighborOffset(d)
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= s.width || ny < 0 || ny >= s.height {
			continue
		}
		s.enqueue(src, s.index(nx, ny), d)
	}
}

// enqueue appends a propagation entry unless an identical one is
// already pending later in the worklist. The tail scan runs over
// entries not yet processed (from the current cursor onward), so a
// cell that narrows twice before its neighbor's filter is next
// processed only gets filtered once per direction per round.
func (s *Solver) enqueue(src, dst int, dir rules.Direction) {
	for i := s.cursor; i < s.length; i++ {
		e := s.worklist[i]
		if e.src == src && e.dst == dst && e.dir == dir {
			return
		}
	}
	if s.length == len(s.worklist) {
		s.worklist = append(s.worklist, propEntry{src, dst, dir})
	} else {
		s.worklist[s.length] = propEntry{src, dst, dir}
	}
	s.length++
}

// runPropagation drains the worklist to a fixpoint, filtering each
// destination cell's candidates against its source's surviving
// candidates in the given direction, and re-enqueueing the
// destination's own neighbors (other than back toward src) whenever it
// narrows. Returns ErrContradiction if any cell's candidates are
// filtered to empty.
func (s *Solver) runPropagation() error {
	for s.cursor < s.length {
		e := s.worklist[s.cursor]
		s.cursor++

		narrowed, err := s.filterCell(e.src, e.dst, e.dir)
		if err != nil {
			return err
		}
		if !narrowed {
			continue
		}

		x, y := s.coordinate(e.dst)
		opp := e.dir.Opposite()
		for _, d := range [4]rules.Direction{rules.Up, rules.Down, rules.Left, rules.Right} {
			if d == opp {
				continue
			}
			dx, dy := neighborOffset(d)
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= s.width || ny < 0 || ny >= s.height {
				continue
			}
			s.enqueue(e.dst, s.index(nx, ny), d)
		}
	}
	s.cursor = 0
	s.length = 0
	return nil
}

// filterCell removes every candidate from dst that no surviving
// candidate of src allows in direction dir. It reports whether dst's
// candidate set actually shrank, and returns ErrContradiction if it
// shrank to empty.
func (s *Solver) filterCell(src, dst int, dir rules.Direction) (bool, error) {
	d := &s.cells[dst]
	srcCands := s.cells[src].candidates[:s.cells[src].count]

	write := 0
	removed := false
	for read := 0; read < d.count; read++ {
		t := d.candidates[read]
		if s.allowedFromAny(srcCands, dir, t) {
			d.candidates[write] = t
			write++
			continue
		}
		removed = true
		freq := s.patternFreqs[t]
		d.sumFreqs -= freq
		p := float64(freq) / float64(s.sumFreqsGlobal)
		d.entropy += p * math.Log(p)
	}
	if !removed {
		return false, nil
	}

	wasCollapsed := d.count == 1
	d.count = write
	if d.count == 0 {
		return true, ErrContradiction
	}
	if d.count == 1 && !wasCollapsed {
		s.collapsedCount++
		d.entropy = 0
	}
	return true, nil
}

// allowedFromAny reports whether any candidate in src allows t to sit
// at its dir-neighbor.
func (s *Solver) allowedFromAny(src []int, dir rules.Direction, t int) bool {
	for _, a := range src {
		if s.matrix.Allowed(dir, a, t) {
			return true
		}
	}
	return false
}
