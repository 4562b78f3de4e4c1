package version

import (
	"runtime"
	"testing"
)

func TestCurrentReadsLinkedMetadata(t *testing.T) {
	oldCommit, oldDate := Commit, BuildDate
	t.Cleanup(func() { Commit, BuildDate = oldCommit, oldDate })

	Commit = "0123456789abcdef0123"
	BuildDate = "2024-05-01T12:00:00Z"
	info := Current()
	if info.Version != Version || info.BuildDate != BuildDate || info.GoVersion != runtime.Version() {
		t.Fatalf("unexpected info %+v", info)
	}
	if got := info.ShortCommit(); got != "0123456789ab" {
		t.Fatalf("ShortCommit = %q", got)
	}
	if got := (Info{Commit: "abc"}).ShortCommit(); got != "abc" {
		t.Fatalf("short hash should be kept, got %q", got)
	}
}
