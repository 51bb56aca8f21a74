// Package corpus locates the raw JSON files of the input tree. Each subtree
// holds one directory per group (a scripture volume or a conference
// campaign) with one JSON file per chapter or talk.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is one raw input file and the group directory that encloses it
type File struct {
	Path  string
	Group string
}

// Scan lists root/<group>/*.json in lexical order of group, then file name.
// Entries directly under root and nested directories are ignored.
func Scan(root string) ([]File, error) {
	groups, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var files []File
	for _, group := range groups {
		if !group.IsDir() {
			continue
		}
		dir := filepath.Join(root, group.Name())
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
				continue
			}
			files = append(files, File{
				Path:  filepath.Join(dir, e.Name()),
				Group: group.Name(),
			})
		}
	}
	return files, nil
}
