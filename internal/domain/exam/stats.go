package exam

import (
	"math"
	"strconv"
)

// Stats summarizes test records across division results. It is derived
// data, recomputed on every request and never cached.
type Stats struct {
	// Min is the smallest student count over all tests.
	Min int `json:"min"`

	// Max is the largest student count over all tests.
	Max int `json:"max"`

	// NumTests is the total number of tests.
	NumTests int `json:"numTests"`

	// NumStudents is the total number of registered students.
	NumStudents int `json:"numStudents"`

	// AverageStudents is students per test, formatted with exactly two
	// fraction digits.
	AverageStudents string `json:"averageStudents"`
}

// FoldStats folds every test across every department of the given
// results into summary statistics. The fold is commutative, result
// order does not matter. With zero tests overall it returns zeroed
// statistics and an average of "0.00".
func FoldStats(results []*DivisionResult) Stats {
	s := Stats{Min: math.MaxInt}

	for _, res := range results {
		if res == nil {
			continue
		}
		for _, dept := range res.Departments {
			for _, t := range dept.Tests {
				s.NumTests++
				s.NumStudents += t.Students
				if t.Students < s.Min {
					s.Min = t.Students
				}
				if t.Students > s.Max {
					s.Max = t.Students
				}
			}
		}
	}

	if s.NumTests == 0 {
		return Stats{AverageStudents: "0.00"}
	}

	avg := float64(s.NumStudents) / float64(s.NumTests)
	s.AverageStudents = strconv.FormatFloat(avg, 'f', 2, 64)

	return s
}
