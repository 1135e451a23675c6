package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a prefab YAML, preferring an on-disk copy under prefabs/ so
// tuning can be edited without rebuilding, falling back to the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript reads a behavior script, disk copy first, embedded fallback.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// ModTime reports the on-disk modification time of a prefab, if present.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "prefabs/")
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	s = strings.TrimPrefix(s, "scripts/")
	return fmt.Sprintf("scripts/%s", s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
