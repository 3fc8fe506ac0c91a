package scenes

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var scenesFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// DiskDir is the directory checked before the embedded defaults, so edited
// scene files win over the compiled-in ones (used together with Watcher).
var DiskDir = "scenes"

// Load reads a scene by name ("sandbox" or "sandbox.yaml"), preferring a
// file on disk, then runs its spawn script if it names one.
func Load(name string) (*Scene, error) {
	clean := cleanName(name)
	data, err := read(scenesFS, clean)
	if err != nil {
		return nil, fmt.Errorf("scenes: load %s: %w", clean, err)
	}

	scene, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("scenes: decode %s: %w", clean, err)
	}
	if scene.Name == "" {
		scene.Name = strings.TrimSuffix(clean, ".yaml")
	}

	if scene.Spawn != "" {
		script, err := read(scriptsFS, "scripts/"+cleanScriptName(scene.Spawn))
		if err != nil {
			return nil, fmt.Errorf("scenes: load spawn script %s: %w", scene.Spawn, err)
		}
		if err := RunSpawn(script, scene); err != nil {
			return nil, fmt.Errorf("scenes: spawn script %s: %w", scene.Spawn, err)
		}
	}

	return scene, nil
}

func read(fs embed.FS, name string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(name))); err == nil {
		return data, nil
	}
	return fs.ReadFile(name)
}

func cleanName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "scenes/")
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func cleanScriptName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "scenes/")
	s = strings.TrimPrefix(s, "scripts/")
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return s
}
