// assets/embed.go
//
// Embedded palette definitions shipped with the binary.
// Each palettes/<name>.yaml file is one board; Names lists them and Palette
// returns the raw YAML.

package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed palettes/*.yaml
var FS embed.FS

// Names lists the embedded palettes, sorted.
func Names() []string {
	entries, err := fs.ReadDir(FS, "palettes")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)
	return out
}

// Palette returns the YAML of the named embedded palette.
func Palette(name string) ([]byte, error) {
	return FS.ReadFile(path.Join("palettes", name+".yaml"))
}
