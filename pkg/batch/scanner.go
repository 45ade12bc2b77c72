// Package batch discovers annotatable volumes in a directory and persists
// finished annotation records alongside them.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tumorannot/internal/models"
)

// Scan lists the files in dir whose name ends with one of the given
// extensions (case-insensitive) and returns them as a batch, sorted by
// filename so annotation order is stable across runs. An empty result is an
// error: the operator needs to know the directory held nothing annotatable.
func Scan(dir string, extensions []string) ([]models.Volume, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading batch directory: %w", err)
	}

	var volumes []models.Volume
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := strings.ToLower(entry.Name())
		for _, ext := range extensions {
			if strings.HasSuffix(name, strings.ToLower(ext)) {
				volumes = append(volumes, models.Volume{
					Filename: entry.Name(),
					Path:     filepath.Join(dir, entry.Name()),
				})
				break
			}
		}
	}

	sort.Slice(volumes, func(i, j int) bool {
		return volumes[i].Filename < volumes[j].Filename
	})

	if len(volumes) == 0 {
		return nil, fmt.Errorf("no volumes matching %v found in %s", extensions, dir)
	}

	return volumes, nil
}
