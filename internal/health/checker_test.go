package health

import (
	"context"
	"testing"
	"time"
)

type staticChecker struct {
	name    string
	healthy bool
}

func (c staticChecker) Check(context.Context) CheckResult {
	return CheckResult{Name: c.name, Healthy: c.healthy}
}

func TestProbeRunnerAllHealthy(t *testing.T) {
	runner := NewProbeRunner(time.Second,
		staticChecker{name: "db", healthy: true},
		staticChecker{name: "redis", healthy: true},
	)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatal("expected ready")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestProbeRunnerReportsUnhealthy(t *testing.T) {
	runner := NewProbeRunner(time.Second,
		staticChecker{name: "db", healthy: true},
		staticChecker{name: "redis", healthy: false},
	)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected not ready")
	}
	if len(results) != 2 || results[1].Healthy {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestProbeRunnerSkipsNilCheckers(t *testing.T) {
	runner := NewProbeRunner(time.Second, nil, staticChecker{name: "db", healthy: true}, nil)
	ready, results := runner.Ready(context.Background())
	if !ready || len(results) != 1 {
		t.Fatalf("expected one healthy result, got ready=%v results=%+v", ready, results)
	}
}

func TestProbeRunnerNilReceiver(t *testing.T) {
	var runner *ProbeRunner
	ready, results := runner.Ready(context.Background())
	if !ready || results != nil {
		t.Fatalf("nil runner must report ready, got ready=%v results=%+v", ready, results)
	}
}

func TestNewCheckersRejectNilDependencies(t *testing.T) {
	if c := NewDBChecker(nil); c != nil {
		t.Fatal("expected nil checker for nil db")
	}
	if c := NewRedisChecker(nil); c != nil {
		t.Fatal("expected nil checker for nil redis client")
	}
}
