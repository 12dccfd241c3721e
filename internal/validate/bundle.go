package validate

import (
	"archive/zip"
	"fmt"
	"path/filepath"
)

// Bundle opens a ZIP on disk and runs the structural check against its
// member list. A corrupt archive is reported as a fatal problem rather than
// an error so callers treat it exactly like any other rejection.
func Bundle(zipPath string) StructureReport {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return StructureReport{
			Fatal: []string{fmt.Sprintf("bad zip file: %s", filepath.Base(zipPath))},
		}
	}
	defer reader.Close()

	entries := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, file.Name)
	}
	return Structure(entries)
}
