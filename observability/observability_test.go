package observability

import (
	"context"
	"testing"

	"github.com/kbukum/authzkit/banking"
	"github.com/kbukum/authzkit/logger"
	"github.com/kbukum/authzkit/rebac"
)

func TestInitDisabled(t *testing.T) {
	p, err := Init(context.Background(), Config{Enabled: false}, logger.Nop())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Endpoint != "localhost:4318" || !cfg.Insecure {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("SampleRate = %v", cfg.SampleRate)
	}
}

// The wrapper must be decision-transparent even without initialized
// providers; the otel globals default to no-ops.
func TestInstrumentedCheckerTransparent(t *testing.T) {
	store := rebac.NewStore()
	banking.Seed(store)
	inner := rebac.NewChecker(store, banking.Rules())

	ic, err := NewInstrumentedChecker(inner)
	if err != nil {
		t.Fatalf("NewInstrumentedChecker: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		user, permission, object string
	}{
		{"user:alice", banking.PermView, "account:acc1"},
		{"user:eve", banking.PermView, "account:acc1"},
		{"user:diana", banking.PermWithdraw, "account:acc1"},
		{"user:alice", "no_such_permission", "account:acc1"},
	}
	for _, tc := range tests {
		want := inner.Check(tc.user, tc.permission, tc.object)
		got := ic.Check(ctx, tc.user, tc.permission, tc.object)
		if got.Allowed != want.Allowed {
			t.Errorf("Check(%s, %s, %s) = %v, want %v",
				tc.user, tc.permission, tc.object, got.Allowed, want.Allowed)
		}
	}

	wantList := inner.ListAccessible("user:alice", banking.PermView, banking.TypeAccount)
	gotList := ic.ListAccessible(ctx, "user:alice", banking.PermView, banking.TypeAccount)
	if len(gotList) != len(wantList) {
		t.Errorf("ListAccessible = %v, want %v", gotList, wantList)
	}

	if got := ic.FilteredRead(ctx, "user:alice", "account:acc1"); got == rebac.AccessDenied {
		t.Error("owner read should pass through")
	}
}
