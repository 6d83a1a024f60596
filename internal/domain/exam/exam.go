// Package exam defines the exam-schedule domain model and the derived
// statistics computed over it.
package exam

// Test is a single scheduled exam as listed in Ugla.
type Test struct {
	// Course is the course number, e.g. "LÆK101G".
	Course string `json:"course"`

	// Name is the course name.
	Name string `json:"name"`

	// Type is the exam type as displayed, e.g. "Skriflegt".
	Type string `json:"type"`

	// Students is the number of registered students.
	Students int `json:"students"`

	// Date is the exam date display text, kept opaque.
	Date string `json:"date"`
}

// Department groups the tests listed under one heading of a division's
// exam page. Tests keep upstream document order.
type Department struct {
	Heading string `json:"heading"`
	Tests   []Test `json:"tests"`
}

// DivisionResult is the parsed exam listing of one division. It is the
// unit stored in and retrieved from the cache.
type DivisionResult struct {
	// Heading is the division display name.
	Heading string `json:"heading"`

	// Departments keep upstream document order. The slice may be empty
	// but is never nil for a successful fetch.
	Departments []Department `json:"departments"`
}

// NumTests returns the total number of tests across all departments.
func (r *DivisionResult) NumTests() int {
	n := 0
	for _, d := range r.Departments {
		n += len(d.Tests)
	}
	return n
}
