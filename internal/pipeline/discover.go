package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// InputExtension selects which files in the work directory are processed.
const InputExtension = ".mp4"

// Discover lists input videos directly inside dir. No recursion; matching is
// case-insensitive on the extension. Paths come back sorted for stable
// submission order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan input directory: %w", err)
	}
	var inputs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), InputExtension) {
			continue
		}
		inputs = append(inputs, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(inputs)
	return inputs, nil
}
