package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

var diskDir = "prefabs"

// SetDir changes the on-disk directory searched before the embedded specs.
func SetDir(dir string) {
	diskDir = dir
}

// Dir returns the on-disk spec directory.
func Dir() string {
	return diskDir
}

// LoadEmbedded returns the built-in copy of a spec.
func LoadEmbedded(name string) ([]byte, error) {
	return PrefabsFS.ReadFile(cleanPrefabPath(name))
}

// LoadDisk returns the on-disk copy of a spec.
func LoadDisk(name string) ([]byte, error) {
	return os.ReadFile(diskPrefabPath(cleanPrefabPath(name)))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(diskDir, filepath.FromSlash(clean))
}
