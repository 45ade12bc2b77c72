package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tumorannot/pkg/annotation"
)

// Writer persists annotation records under a batch directory.
type Writer struct {
	// Dir is the batch directory the volumes were loaded from.
	Dir string

	// SubDir is the subdirectory receiving records, typically "annotations".
	SubDir string
}

// Write saves the record as <stem>.json inside Dir/SubDir, creating the
// directory as needed, and returns the written path. Existing records for
// the same volume are overwritten, so re-submitting after a relaxation
// change replaces the earlier annotation.
func (w Writer) Write(rec annotation.Record) (string, error) {
	outDir := filepath.Join(w.Dir, w.SubDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("creating annotation directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding annotation record: %w", err)
	}

	outPath := filepath.Join(outDir, Stem(rec.Filename)+".json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing annotation record: %w", err)
	}

	return outPath, nil
}

// Stem strips only the final extension from a volume filename, so
// "case.nii.gz" maps to "case.nii" and "case.nii" to "case". Downstream
// consumers key on these stems, so double extensions are deliberately not
// collapsed further.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
