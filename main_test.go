package main

import (
	"context"
	"testing"
)

func TestConflictingModeFlags(t *testing.T) {
	rootCmd.SilenceErrors = true
	defer func() {
		rootCmd.SilenceErrors = false
		rootCmd.SetArgs(nil)
		sendNow = false
		runSchedule = false
	}()

	rootCmd.SetArgs([]string{"--send-now", "--schedule"})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected error when both --send-now and --schedule are set")
	}
}
