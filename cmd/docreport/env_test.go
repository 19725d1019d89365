package main

import (
	"os"
	"testing"
	"time"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()

	before := time.Now()
	got := env.Now()
	if got.Before(before) {
		t.Errorf("Now() = %v, want a real clock", got)
	}
	if env.Stdout != os.Stdout || env.Stderr != os.Stderr {
		t.Error("DefaultEnv should write to the process stdout and stderr")
	}
	if env.NewGenerator == nil {
		t.Fatal("NewGenerator should not be nil")
	}

	// Building a generator does not start a browser.
	gen, err := env.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	if err := gen.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
