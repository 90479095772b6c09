package health

import (
	"context"
	"time"
)

type CheckResult struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type Checker interface {
	Check(ctx context.Context) CheckResult
}

type ProbeRunner struct {
	checkers  []Checker
	timeout   time.Duration
	startedAt time.Time
}

func NewProbeRunner(timeout time.Duration, checkers ...Checker) *ProbeRunner {
	if timeout <= 0 {
		timeout = time.Second
	}
	filtered := make([]Checker, 0, len(checkers))
	for _, c := range checkers {
		if c != nil {
			filtered = append(filtered, c)
		}
	}
	return &ProbeRunner{
		checkers:  filtered,
		timeout:   timeout,
		startedAt: time.Now(),
	}
}

func (r *ProbeRunner) Ready(ctx context.Context) (bool, []CheckResult) {
	if r == nil {
		return true, nil
	}
	results := make([]CheckResult, 0, len(r.checkers))
	allHealthy := true
	for _, c := range r.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
		res := c.Check(checkCtx)
		cancel()
		results = append(results, res)
		if !res.Healthy {
			allHealthy = false
		}
	}
	return allHealthy, results
}
