package observability

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/faizhadyan1212/StuMa-Api/internal/config"
)

func TestRecordersAreSafeBeforeInit(t *testing.T) {
	metricsMu.Lock()
	saved := appMetrics
	appMetrics = nil
	metricsMu.Unlock()
	t.Cleanup(func() {
		metricsMu.Lock()
		appMetrics = saved
		metricsMu.Unlock()
	})

	ctx := context.Background()
	RecordAuthRegister(ctx, "success")
	RecordAuthLogin(ctx, "failure")
	RecordTokenValidation(ctx, "expired")
	RecordProfileEvent(ctx, "update", "success")
	RecordItemOperation(ctx, "create", "success", time.Millisecond)
	RecordRateLimitDecision(ctx, "api", "allowed")
}

func TestInitMetricsDisabled(t *testing.T) {
	cfg := &config.Config{OTELMetricsEnabled: false}
	mp, err := InitMetrics(context.Background(), cfg, slog.Default())
	if err != nil {
		t.Fatalf("init metrics: %v", err)
	}
	if mp == nil {
		t.Fatal("expected a no-op meter provider")
	}
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
}
