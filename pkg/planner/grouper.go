package planner

import (
	"path/filepath"
	"strings"
)

/**************************************************************************************************
** GroupFiles partitions a flat list of file paths into groups sharing a basename. A photo
** and its sidecars ("IMG1.jpg", "IMG1.xmp") land in one group with both extensions
** recorded. Paths without an extension still produce a group entry so every input file is
** accounted for. Never fails; malformed paths are treated literally.
**
** @param paths - Flat list of regular-file paths
** @return FileGroups - Basename-keyed groups with their extension sets
**************************************************************************************************/
func GroupFiles(paths []string) FileGroups {
	groups := make(FileGroups, len(paths))

	for _, p := range paths {
		ext := filepath.Ext(p)
		// A dotfile's leading dot is not an extension separator: ".DS_Store" is an
		// extensionless name, not an empty basename carrying a ".DS_Store" extension.
		if ext == filepath.Base(p) {
			ext = ""
		}
		basename := strings.TrimSuffix(p, ext)

		set, ok := groups[basename]
		if !ok {
			set = make(ExtSet)
			groups[basename] = set
		}
		if ext != "" {
			set.Add(ext)
		}
	}

	return groups
}
