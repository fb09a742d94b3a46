package persist

import (
	"fmt"
	"path/filepath"
)

// GenerationFilename names a per-generation checkpoint:
// variant.gen.<N>.best.<fitness>.<ext>
func GenerationFilename(dir string, generation int, fitness float64, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("variant.gen.%d.best.%g.%s", generation, fitness, ext))
}

// FinalFilename names the end-of-run winner: best.<ext>
func FinalFilename(dir, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("best.%s", ext))
}
