package bench

import (
	"slices"
	"strings"
)

// Point is one algorithm's measurement at one solution depth. When several
// cases share a depth their values are averaged.
type Point struct {
	Depth     int
	Algorithm string
	Nodes     float64
	Seconds   float64
	Samples   int
}

// Summary groups goal records by depth and algorithm.
type Summary struct {
	Depths     []int
	Algorithms []string // first-seen order
	points     map[int]map[string]*Point
	Skipped    int // records without a depth (N/A or TIMEOUT)
}

// Summarize aggregates records, skipping those without a solution.
func Summarize(records []Record) *Summary {
	s := &Summary{points: make(map[int]map[string]*Point)}
	for _, r := range records {
		if !r.Found() {
			s.Skipped++
			continue
		}
		byAlg, ok := s.points[r.Depth]
		if !ok {
			byAlg = make(map[string]*Point)
			s.points[r.Depth] = byAlg
			s.Depths = append(s.Depths, r.Depth)
		}
		if !slices.Contains(s.Algorithms, r.Algorithm) {
			s.Algorithms = append(s.Algorithms, r.Algorithm)
		}
		p, ok := byAlg[r.Algorithm]
		if !ok {
			p = &Point{Depth: r.Depth, Algorithm: r.Algorithm}
			byAlg[r.Algorithm] = p
		}
		p.Samples++
		p.Nodes += (float64(r.Nodes) - p.Nodes) / float64(p.Samples)
		p.Seconds += (r.Seconds - p.Seconds) / float64(p.Samples)
	}
	slices.Sort(s.Depths)
	return s
}

// Point returns the measurement for depth and algorithm.
func (s *Summary) Point(depth int, algorithm string) (Point, bool) {
	p, ok := s.points[depth][algorithm]
	if !ok {
		return Point{}, false
	}
	return *p, true
}

// Series returns one algorithm's points in depth order.
func (s *Summary) Series(algorithm string) []Point {
	var out []Point
	for _, d := range s.Depths {
		if p, ok := s.Point(d, algorithm); ok {
			out = append(out, p)
		}
	}
	return out
}

// Bar draws value as a bar of at most width cells relative to max.
func Bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * float64(width))
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
