package cli

import (
	"testing"
)

func resetFlags() {
	flagModel = ""
	flagExclude = ""
	flagMaxPatchChars = 0
	flagFormat = ""
	flagNoRedact = false
}

func TestBuildOverrides_Empty(t *testing.T) {
	resetFlags()

	m := buildOverrides()
	if len(m) != 0 {
		t.Errorf("overrides = %v, want empty", m)
	}
}

func TestBuildOverrides_SetFlags(t *testing.T) {
	resetFlags()
	defer resetFlags()

	flagModel = "gemini-2.5-pro"
	flagMaxPatchChars = 1234
	flagNoRedact = true

	m := buildOverrides()
	if m["model"] != "gemini-2.5-pro" {
		t.Errorf("model = %q", m["model"])
	}
	if m["maxPatchChars"] != "1234" {
		t.Errorf("maxPatchChars = %q", m["maxPatchChars"])
	}
	if m["redactSecrets"] != "false" {
		t.Errorf("redactSecrets = %q", m["redactSecrets"])
	}
	if _, ok := m["exclude"]; ok {
		t.Error("exclude should not be set")
	}
}
