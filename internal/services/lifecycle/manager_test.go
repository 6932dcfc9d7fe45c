package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShutdownRunsInReverseRegistrationOrder(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	for _, name := range []string{"pool", "cache", "server"} {
		name := name
		m.Register(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	want := []string{"server", "cache", "pool"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("teardown order = %v, want %v", order, want)
		}
	}
}

func TestShutdownContinuesPastFailures(t *testing.T) {
	m := New(time.Second, nil)

	failed := errors.New("close timed out")
	var reached bool
	m.Register("pool", func(context.Context) error {
		reached = true
		return nil
	})
	m.Register("server", func(context.Context) error { return failed })

	err := m.Shutdown(context.Background())
	if !errors.Is(err, failed) {
		t.Fatalf("shutdown error = %v, want wrapped %v", err, failed)
	}
	if !reached {
		t.Fatal("later hooks must still run after a failure")
	}
}

func TestRegisterIgnoresNil(t *testing.T) {
	m := New(0, nil)
	m.Register("noop", nil)
	if len(m.stack) != 0 {
		t.Fatalf("stack = %d entries, want 0", len(m.stack))
	}
}
