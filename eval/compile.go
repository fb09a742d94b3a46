package eval

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"asmgp/instr"
)

// compile writes ind's representation to a fresh temp source file under
// workDir and invokes the configured compiler, producing a temp binary.
// The source file is always removed; the binary is removed too if
// compilation failed but still managed to produce one.
func compile(ctx context.Context, cfg Config, ind instr.Individual, workDir string) (string, error) {
	src, err := os.CreateTemp(workDir, "asmgp-src-*.s")
	if err != nil {
		return "", fmt.Errorf("create temp source: %w", err)
	}
	srcPath := src.Name()
	src.Close()
	defer os.Remove(srcPath)

	if err := instr.WriteFile(srcPath, ind); err != nil {
		return "", fmt.Errorf("write temp source: %w", err)
	}

	binPath := srcPath + ".out"
	args := append(append([]string{}, cfg.CompilerFlags...), "-o", binPath, srcPath)
	cmd := exec.CommandContext(ctx, cfg.Compiler, args...)

	if err := cmd.Run(); err != nil {
		os.Remove(binPath)
		return "", fmt.Errorf("%s: %w", cfg.Compiler, err)
	}

	if err := os.Chmod(binPath, 0o755); err != nil {
		os.Remove(binPath)
		return "", fmt.Errorf("chmod compiled binary: %w", err)
	}

	return binPath, nil
}
