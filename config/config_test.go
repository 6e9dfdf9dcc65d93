package config

import "testing"

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("JUMBLE_OUTPUT", "/tmp/sample.txt")
	t.Setenv("JUMBLE_ZERO_TERMINATED", "true")
	Init()

	if got, want := Output(), "/tmp/sample.txt"; got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
	if !ZeroTerminated() {
		t.Error("ZeroTerminated() = false, want true")
	}
}
