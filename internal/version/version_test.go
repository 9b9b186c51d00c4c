package version

import (
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	if Version == "" || Commit == "" {
		t.Fatalf("expected version and commit to be populated, got %q %q", Version, Commit)
	}
	full := Full()
	if !strings.HasPrefix(full, Version) || !strings.Contains(full, "commit: "+Commit) {
		t.Errorf("unexpected full version %q", full)
	}
}
