package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v9.9.9"

	if s := String(); !strings.Contains(s, "version: v9.9.9") {
		t.Errorf("String() = %q, want version line", s)
	}
	if got := Get().Version; got != "v9.9.9" {
		t.Errorf("Get().Version = %q, want %q", got, "v9.9.9")
	}
	if tpl := Template(); !strings.HasPrefix(tpl, "{{.Name}} version v9.9.9") {
		t.Errorf("Template() = %q", tpl)
	}
}
