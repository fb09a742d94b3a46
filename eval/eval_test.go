package eval

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"asmgp/instr"
)

// writeScript drops an executable shell script into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleIndividual() instr.Individual {
	return instr.Individual{Representation: []instr.Instruction{
		{Line: instr.TabbedLine("mov", "%rax, %rbx")},
		{Line: instr.TabbedLine("add", "$1, %rax")},
	}}
}

func testConfig(t *testing.T, goodLines, badLines int) Config {
	t.Helper()
	dir := t.TempDir()

	compiler := writeScript(t, dir, "cc.sh", `shift
cp "$2" "$1"`)

	good := writeScript(t, dir, "good.sh", linesScriptBody(goodLines))
	bad := writeScript(t, dir, "bad.sh", linesScriptBody(badLines))

	return Config{
		Compiler:    compiler,
		TestDir:     dir,
		TestGood:    good,
		TestBad:     bad,
		GoodMult:    1,
		BadMult:     5,
		TestTimeout: 2 * time.Second,
	}
}

func linesScriptBody(n int) string {
	body := ""
	for i := 0; i < n; i++ {
		body += `echo x >> "$2"
`
	}
	return body
}

func TestEvaluateSuccessComputesFitness(t *testing.T) {
	cfg := testConfig(t, 3, 2) // fitness = 3*1 + 2*5 = 13
	ev := NewEvaluator(cfg, nil)

	ind := sampleIndividual()
	if err := ev.Evaluate(context.Background(), &ind); err != nil {
		t.Fatal(err)
	}

	if !ind.Scored {
		t.Fatalf("expected Scored = true")
	}
	if ind.Fitness != 13 {
		t.Fatalf("Fitness = %v, want 13", ind.Fitness)
	}
	if ind.Reused {
		t.Fatalf("first evaluation should not be a cache hit")
	}
	if ind.Trials != 1 {
		t.Fatalf("Trials = %d, want 1", ind.Trials)
	}
}

func TestEvaluateCompileFailureScoresZero(t *testing.T) {
	dir := t.TempDir()
	compiler := writeScript(t, dir, "cc.sh", "exit 1")
	cfg := Config{Compiler: compiler, TestDir: dir, TestTimeout: time.Second}
	ev := NewEvaluator(cfg, nil)

	ind := sampleIndividual()
	if err := ev.Evaluate(context.Background(), &ind); err != nil {
		t.Fatal(err)
	}
	if ind.Fitness != 0 {
		t.Fatalf("Fitness = %v, want 0", ind.Fitness)
	}
	if ind.Compile != "" {
		t.Fatalf("Compile should be cleared on failure, got %q", ind.Compile)
	}
	if !ind.Scored {
		t.Fatalf("expected Scored = true even on compile failure")
	}
}

func TestEvaluateCacheHitSkipsRecompileAndMarksReused(t *testing.T) {
	cfg := testConfig(t, 1, 0)
	ev := NewEvaluator(cfg, nil)

	first := sampleIndividual()
	if err := ev.Evaluate(context.Background(), &first); err != nil {
		t.Fatal(err)
	}

	second := sampleIndividual() // identical representation, distinct value
	if err := ev.Evaluate(context.Background(), &second); err != nil {
		t.Fatal(err)
	}

	if !second.Reused {
		t.Fatalf("expected second evaluation to be a cache hit")
	}
	if second.Fitness != first.Fitness {
		t.Fatalf("cached fitness %v != original %v", second.Fitness, first.Fitness)
	}
	if second.Trials != 2 {
		t.Fatalf("Trials should still increment on a cache hit, got %d", second.Trials)
	}
}

func TestEvaluateOracleTimeoutScoresZeroContribution(t *testing.T) {
	dir := t.TempDir()
	compiler := writeScript(t, dir, "cc.sh", `shift
cp "$2" "$1"`)
	slow := writeScript(t, dir, "slow.sh", "sleep 5")

	cfg := Config{
		Compiler:    compiler,
		TestDir:     dir,
		TestGood:    slow,
		GoodMult:    1,
		BadMult:     1,
		TestTimeout: 50 * time.Millisecond,
	}
	ev := NewEvaluator(cfg, nil)

	ind := sampleIndividual()
	if err := ev.Evaluate(context.Background(), &ind); err != nil {
		t.Fatal(err)
	}
	if ind.Fitness != 0 {
		t.Fatalf("Fitness = %v, want 0 on oracle timeout", ind.Fitness)
	}
}

func TestStructuralKeyStableAcrossEqualRepresentations(t *testing.T) {
	a := sampleIndividual()
	b := sampleIndividual()
	if structuralKey(a) != structuralKey(b) {
		t.Fatalf("structurally identical individuals hashed differently")
	}

	c := sampleIndividual()
	c.Representation[0] = instr.Instruction{Line: instr.TabbedLine("sub", "%rax, %rbx")}
	if structuralKey(a) == structuralKey(c) {
		t.Fatalf("different representations hashed identically")
	}
}

func TestFitnessCacheConcurrentAccess(t *testing.T) {
	c := newFitnessCache()
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			c.Set(key, float64(i))
			c.Get(key)
		}(i)
	}
	wg.Wait()
}
