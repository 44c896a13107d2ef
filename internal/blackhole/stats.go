package blackhole

import (
	"fmt"
	"strings"
)

// RenderStats counts per-pixel integration outcomes.
type RenderStats struct {
	Pixels    int
	Outcomes  [4]int // indexed by Outcome, after resolution
	Exhausted int    // rays that ran out of budget before resolution
	Orbiting  int    // rays with at least one full winding
	Steps     int64
	MaxSteps  int
}

func (s *RenderStats) add(sh *Shaded) {
	s.Pixels++
	s.Outcomes[sh.Outcome]++
	if sh.Ray.Outcome() == Exhausted {
		s.Exhausted++
	}
	if sh.Ray.Orbits != 0 {
		s.Orbiting++
	}
	s.Steps += int64(sh.Ray.Steps)
	if sh.Ray.Steps > s.MaxSteps {
		s.MaxSteps = sh.Ray.Steps
	}
}

// Merge folds o into s.
func (s *RenderStats) Merge(o RenderStats) {
	s.Pixels += o.Pixels
	for i := range s.Outcomes {
		s.Outcomes[i] += o.Outcomes[i]
	}
	s.Exhausted += o.Exhausted
	s.Orbiting += o.Orbiting
	s.Steps += o.Steps
	if o.MaxSteps > s.MaxSteps {
		s.MaxSteps = o.MaxSteps
	}
}

// Fraction of pixels that resolved to o.
func (s *RenderStats) Fraction(o Outcome) Real {
	if s.Pixels == 0 {
		return 0
	}
	return Real(s.Outcomes[o]) / Real(s.Pixels)
}

// MeanSteps is the average number of integration steps per pixel.
func (s *RenderStats) MeanSteps() Real {
	if s.Pixels == 0 {
		return 0
	}
	return Real(s.Steps) / Real(s.Pixels)
}

func (s RenderStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pixels=%d", s.Pixels)
	for _, o := range []Outcome{Captured, Escaped} {
		fmt.Fprintf(&b, " %s=%.1f%%", o, 100*s.Fraction(o))
	}
	fmt.Fprintf(&b, " exhausted=%d orbiting=%d steps(mean=%.1f max=%d)", s.Exhausted, s.Orbiting, s.MeanSteps(), s.MaxSteps)
	return b.String()
}
