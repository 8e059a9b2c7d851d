package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestEnabledFollowsOutput(t *testing.T) {
	defer SetOutput(nil)

	SetOutput(nil)
	if Enabled() {
		t.Error("debug should be disabled with no output set")
	}

	var buf bytes.Buffer
	SetOutput(&buf)
	if !Enabled() {
		t.Error("debug should be enabled after SetOutput")
	}
}

func TestLogfWritesWhenEnabled(t *testing.T) {
	defer SetOutput(nil)

	var buf bytes.Buffer
	SetOutput(&buf)
	Logf("loaded %d terms", 42)

	out := buf.String()
	if !strings.Contains(out, "loaded 42 terms") {
		t.Errorf("expected log line in output, got %q", out)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("expected timestamp prefix, got %q", out)
	}
}

func TestLogfSilentWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetOutput(nil)
	Logf("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}
}
