package lazyload

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFutureBecomesReady(t *testing.T) {
	release := make(chan struct{})
	f := Begin(context.Background(), func(context.Context) ([]string, error) {
		<-release
		return []string{"a", "b"}, nil
	})

	if f.State() != StatePending {
		t.Fatalf("expected pending before load finishes, got %s", f.State())
	}

	close(release)
	waitDone(t, f.Done())

	if f.State() != StateReady {
		t.Fatalf("expected ready, got %s", f.State())
	}
	if got := f.Value(); len(got) != 2 || got[0] != "a" {
		t.Fatalf("unexpected value: %#v", got)
	}
	if f.Err() != nil {
		t.Fatalf("unexpected error: %v", f.Err())
	}
}

func TestFutureFailure(t *testing.T) {
	boom := errors.New("boom")
	f := Begin(context.Background(), func(context.Context) (int, error) {
		return 0, boom
	})
	waitDone(t, f.Done())

	if f.State() != StateFailed {
		t.Fatalf("expected failed, got %s", f.State())
	}
	if !errors.Is(f.Err(), boom) {
		t.Fatalf("expected boom, got %v", f.Err())
	}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for future")
	}
}
