package probe

import "context"

// CheckResult is the unified result of a single preflight check.
type CheckResult struct {
	Name       string `json:"name"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"` // HTTP status when available; 0 otherwise
}

// Checker performs one self-contained preflight check.
type Checker interface {
	Check(ctx context.Context) CheckResult
}

// MultiChecker runs a set of checks in order.
type MultiChecker struct {
	Checkers []Checker
}

func NewMultiChecker(checkers ...Checker) *MultiChecker {
	return &MultiChecker{Checkers: checkers}
}

func (m *MultiChecker) Run(ctx context.Context) []CheckResult {
	results := make([]CheckResult, 0, len(m.Checkers))
	for _, c := range m.Checkers {
		results = append(results, c.Check(ctx))
	}
	return results
}
