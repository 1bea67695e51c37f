package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewSpec(t *testing.T) {
	tests := []struct {
		timeOfDay string
		wantSpec  string
	}{
		{"09:00", "0 9 * * *"},
		{"00:00", "0 0 * * *"},
		{"23:59", "59 23 * * *"},
		{"7:05", "5 7 * * *"},
	}

	for _, tt := range tests {
		s, err := New(tt.timeOfDay)
		if err != nil {
			t.Errorf("New(%q): %v", tt.timeOfDay, err)
			continue
		}
		if s.Spec() != tt.wantSpec {
			t.Errorf("New(%q).Spec() = %q, want %q", tt.timeOfDay, s.Spec(), tt.wantSpec)
		}
	}
}

func TestNewInvalid(t *testing.T) {
	for _, timeOfDay := range []string{"", "9", "24:00", "12:60", "ab:cd", "12:00:00"} {
		if _, err := New(timeOfDay); err == nil {
			t.Errorf("New(%q): expected error", timeOfDay)
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := New("09:00")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func() {})
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
