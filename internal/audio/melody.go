package audio

import "time"

// Note is one melody note. At is the start offset from the beginning of the
// loop, or an absolute music time when returned by Due.
type Note struct {
	Freq float64
	Dur  time.Duration
	At   time.Duration
}

// Melody is a looping phrase followed by a rest.
type Melody struct {
	Notes  []Note
	Period time.Duration
}

// NewMelody lays notes end to end and appends rest before the loop repeats.
// Note At values are ignored and recomputed.
func NewMelody(rest time.Duration, notes ...Note) Melody {
	m := Melody{Notes: make([]Note, len(notes))}
	var at time.Duration
	for i, n := range notes {
		n.At = at
		m.Notes[i] = n
		at += n.Dur
	}
	m.Period = at + rest
	return m
}

// DefaultMelody is the upbeat C-D-E-G-E-G phrase with a half second rest.
func DefaultMelody() Melody {
	const beat = 200 * time.Millisecond
	return NewMelody(500*time.Millisecond,
		Note{Freq: 523.25, Dur: beat},     // C5
		Note{Freq: 587.33, Dur: beat},     // D5
		Note{Freq: 659.25, Dur: beat},     // E5
		Note{Freq: 783.99, Dur: beat},     // G5
		Note{Freq: 659.25, Dur: beat},     // E5
		Note{Freq: 783.99, Dur: 2 * beat}, // G5
	)
}

// Due returns the notes starting in [from, to) of music time, in order,
// with At set to their absolute start. Contiguous windows never repeat or
// skip a note.
func (m Melody) Due(from, to time.Duration) []Note {
	if m.Period <= 0 || to <= from || len(m.Notes) == 0 {
		return nil
	}
	if from < 0 {
		from = 0
	}

	var due []Note
	for base := (from / m.Period) * m.Period; base < to; base += m.Period {
		for _, n := range m.Notes {
			at := base + n.At
			if at >= from && at < to {
				n.At = at
				due = append(due, n)
			}
		}
	}
	return due
}
