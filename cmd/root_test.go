package cmd

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it; fmt.Println in rootCmd.RunE writes straight to
// os.Stdout, not to cobra's configured output writer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	old := os.Stdout
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(data)
}

func TestRootWithNoArgsPrintsFixedMessage(t *testing.T) {
	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	})
	if strings.TrimSpace(out) != "Please enter a command." {
		t.Fatalf("output = %q, want %q", out, "Please enter a command.")
	}
}

func TestRootWithUnknownCommandPrintsFixedMessage(t *testing.T) {
	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"not-a-real-command"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("Execute: %v", err)
		}
	})
	if strings.TrimSpace(out) != "No command with that name exists." {
		t.Fatalf("output = %q, want %q", out, "No command with that name exists.")
	}
}
