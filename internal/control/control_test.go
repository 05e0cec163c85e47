package control

import (
	"testing"

	"github.com/localvcs/snap/internal/objects"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()

	rec := New()
	rec.Refs.ActiveBranch = "master"
	rec.Refs.Head = "digest1"
	rec.Refs.Branches["master"] = "digest1"
	rec.Refs.Remotes["origin"] = "/tmp/origin"
	rec.Index.StagedAdd["a.txt"] = "bloba"
	rec.Index.StagedRemove["b.txt"] = true
	rec.Summaries["digest1"] = objects.Summary{
		Timestamp: objects.Timestamp{Unix: 123, Offset: -3600},
		Message:   "initial commit",
	}

	if err := Save(root, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Refs.ActiveBranch != rec.Refs.ActiveBranch || got.Refs.Head != rec.Refs.Head {
		t.Fatalf("Refs round trip mismatch: %+v", got.Refs)
	}
	if got.Refs.Branches["master"] != "digest1" {
		t.Fatalf("Branches round trip mismatch: %+v", got.Refs.Branches)
	}
	if got.Refs.Remotes["origin"] != "/tmp/origin" {
		t.Fatalf("Remotes round trip mismatch: %+v", got.Refs.Remotes)
	}
	if got.Index.StagedAdd["a.txt"] != "bloba" || !got.Index.StagedRemove["b.txt"] {
		t.Fatalf("Index round trip mismatch: %+v", got.Index)
	}
	if sum, ok := got.Summaries["digest1"]; !ok || sum.Message != "initial commit" {
		t.Fatalf("Summaries round trip mismatch: %+v", got.Summaries)
	}
}

func TestCloneIsDeep(t *testing.T) {
	rec := New()
	rec.Refs.Branches["master"] = "d1"
	rec.Summaries["d1"] = objects.Summary{Message: "m"}

	clone := rec.Clone()
	clone.Refs.Branches["master"] = "changed"
	clone.Summaries["d1"] = objects.Summary{Message: "changed"}

	if rec.Refs.Branches["master"] != "d1" {
		t.Fatalf("mutating clone.Refs affected the original")
	}
	if rec.Summaries["d1"].Message != "m" {
		t.Fatalf("mutating clone.Summaries affected the original")
	}
}

func TestLoadMissingRepositoryErrors(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("Load on a directory with no control record did not error")
	}
}
