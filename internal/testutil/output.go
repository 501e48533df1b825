package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries a test *app.App through a command context
const TestAppKey ContextKey = "testApp"

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Restore stdout even if fn fails the test
	defer func() {
		os.Stdout = oldStdout
	}()

	fn()

	_ = w.Close()
	return <-outC
}
