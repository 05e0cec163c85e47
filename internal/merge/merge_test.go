package merge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/localvcs/snap/internal/objects"
)

func TestDecideTable(t *testing.T) {
	const s, o1, o2 = "split", "active", "other"
	cases := []struct {
		name    string
		s, a, o string
		want    Action
	}{
		{"unchanged on both sides", s, s, s, Keep},
		{"only active changed", s, o1, s, Keep},
		{"only other changed", s, s, o2, TakeOther},
		{"both changed identically", s, o1, o1, Keep},
		{"both changed differently", s, o1, o2, Conflict},
		{"absent everywhere", "", "", "", Keep},
		{"added only by other", "", "", o2, TakeOther},
		{"added only by active", "", o1, "", Keep},
		{"added identically by both", "", o1, o1, Keep},
		{"added differently by both", "", o1, o2, Conflict},
		{"removed by other only", s, s, "", Remove},
		{"removed by active only", s, "", s, Keep},
		{"active changed, other removed", s, o1, "", Conflict},
		{"other changed, active removed", s, "", o2, Conflict},
		{"removed by both", s, "", "", Keep},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decide(c.s, c.a, c.o)
			if got != c.want {
				t.Errorf("decide(%q,%q,%q) = %v, want %v", c.s, c.a, c.o, got, c.want)
			}
		})
	}
}

func TestCombineEscalatesOnly(t *testing.T) {
	cases := []struct {
		primary, secondary, want Action
	}{
		{Keep, Keep, Keep},
		{Keep, TakeOther, TakeOther},
		{Keep, Conflict, Conflict},
		{TakeOther, Keep, TakeOther},
		{Conflict, TakeOther, Conflict},
		{Conflict, Keep, Conflict},
		{Remove, Conflict, Conflict},
		{Remove, TakeOther, TakeOther},
		{Remove, Keep, Remove},
	}
	for _, c := range cases {
		if got := combine(c.primary, c.secondary); got != c.want {
			t.Errorf("combine(%v,%v) = %v, want %v", c.primary, c.secondary, got, c.want)
		}
	}
}

func TestPlanUnionsAllCandidateNames(t *testing.T) {
	head := map[string]string{"a.txt": "d1"}
	other := map[string]string{"b.txt": "d2"}
	split := map[string]string{"c.txt": "d3"}

	outcomes := Plan(head, other, split, nil, false)
	names := map[string]Action{}
	for _, o := range outcomes {
		names[o.Name] = o.Action
	}
	if len(names) != 3 {
		t.Fatalf("Plan produced %d outcomes, want 3: %v", len(names), names)
	}
	if names["a.txt"] != Keep {
		t.Errorf("a.txt only on active side = %v, want Keep", names["a.txt"])
	}
	if names["b.txt"] != TakeOther {
		t.Errorf("b.txt only on other side = %v, want TakeOther", names["b.txt"])
	}
	if names["c.txt"] != Keep {
		t.Errorf("c.txt removed by both = %v, want Keep", names["c.txt"])
	}
}

func TestApplyTakeOtherAndConflict(t *testing.T) {
	root := t.TempDir()
	store := objects.Store{Root: root}
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	headDigest, err := store.PutBlob(objects.Blob{Name: "conflict.txt", Bytes: []byte("mine")})
	if err != nil {
		t.Fatalf("PutBlob: %v", err)
	}
	otherDigest, err := store.PutBlob(objects.Blob{Name: "conflict.txt", Bytes: []byte("theirs")})
	if err != nil {
		t.Fatalf("PutBlob: %v", err)
	}
	takeOtherDigest, err := store.PutBlob(objects.Blob{Name: "taken.txt", Bytes: []byte("other content")})
	if err != nil {
		t.Fatalf("PutBlob: %v", err)
	}

	head := map[string]string{"conflict.txt": headDigest}
	other := map[string]string{"conflict.txt": otherDigest, "taken.txt": takeOtherDigest}
	outcomes := []FileOutcome{
		{Name: "conflict.txt", Action: Conflict},
		{Name: "taken.txt", Action: TakeOther},
	}

	result, err := Apply(root, store, head, other, outcomes)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !result.HasConflicts {
		t.Fatalf("result.HasConflicts = false, want true")
	}

	data, err := os.ReadFile(filepath.Join(root, "conflict.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := conflictOpen + "mine" + conflictMid + "theirs" + conflictClose
	if string(data) != want {
		t.Fatalf("conflict file = %q, want %q", data, want)
	}

	takenData, err := os.ReadFile(filepath.Join(root, "taken.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(takenData) != "other content" {
		t.Fatalf("taken.txt = %q, want %q", takenData, "other content")
	}
	if result.Tracked["taken.txt"] != takeOtherDigest {
		t.Fatalf("Tracked[taken.txt] = %s, want %s", result.Tracked["taken.txt"], takeOtherDigest)
	}
}

func TestRequireCleanIndex(t *testing.T) {
	if err := RequireCleanIndex(true); err != nil {
		t.Fatalf("RequireCleanIndex(true) = %v, want nil", err)
	}
	if err := RequireCleanIndex(false); err == nil {
		t.Fatalf("RequireCleanIndex(false) = nil, want an error")
	}
}

func TestRequireNotSelfMerge(t *testing.T) {
	if err := RequireNotSelfMerge("master", "feature"); err != nil {
		t.Fatalf("RequireNotSelfMerge(distinct) = %v, want nil", err)
	}
	if err := RequireNotSelfMerge("master", "master"); err == nil {
		t.Fatalf("RequireNotSelfMerge(same) = nil, want an error")
	}
}
