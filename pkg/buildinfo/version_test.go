package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v1.2.3"

	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
	if got := Generator(); got != "sitegrid v1.2.3" {
		t.Errorf("Generator() = %q", got)
	}
	if got := String(); !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("String() = %q", got)
	}
}
