package dashboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"asmgp/instr"
	"asmgp/persist"
)

func TestLatestCheckpointPicksNewestByModTime(t *testing.T) {
	dir := t.TempDir()

	older := persist.Checkpoint{Generation: 1, Individual: instr.Individual{Fitness: 1}}
	newer := persist.Checkpoint{Generation: 2, Individual: instr.Individual{Fitness: 2}}

	olderPath := filepath.Join(dir, "variant.gen.1.best.1.s")
	newerPath := filepath.Join(dir, "variant.gen.2.best.2.s")

	if err := persist.Save(olderPath, older); err != nil {
		t.Fatal(err)
	}
	// Ensure distinct mtimes regardless of filesystem timestamp granularity.
	oldTime := time.Now().Add(-time.Hour)
	if err := os.Chtimes(olderPath, oldTime, oldTime); err != nil {
		t.Fatal(err)
	}
	if err := persist.Save(newerPath, newer); err != nil {
		t.Fatal(err)
	}

	path, cp, err := latestCheckpoint(dir)
	if err != nil {
		t.Fatal(err)
	}
	if path != newerPath {
		t.Fatalf("path = %q, want %q", path, newerPath)
	}
	if cp.Generation != 2 {
		t.Fatalf("Generation = %d, want 2", cp.Generation)
	}
}

func TestLatestCheckpointEmptyDirErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := latestCheckpoint(dir); err == nil {
		t.Fatalf("expected an error for an empty checkpoint dir")
	}
}

func TestSortedCheckpointsOrdersLexically(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"variant.gen.2.best.5.s", "variant.gen.10.best.5.s", "best.s"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("generation:0\nfitness:0.000000\ntrials:0\nreused:false\ncompile:none\n---\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := SortedCheckpoints(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Lexical order: "best.s" < "variant.gen.10..." < "variant.gen.2..."
	if filepath.Base(got[0]) != "best.s" {
		t.Fatalf("got[0] = %q, want best.s", got[0])
	}
}
