// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the runtime
// to switch between them by name without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-cupcake/internal/scene"
)

// ErrUnknownScene is returned by Create for names nothing registered.
var ErrUnknownScene = errors.New("registry: unknown scene")

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	Name  string
	Level bool
}

// Factory creates a fresh scene. Each load gets its own instance so asset
// state never leaks between runs.
type Factory func() *scene.Scene

var (
	factories = make(map[string]Factory)
	levels    = make(map[string]bool)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", name))
	}

	factories[name] = f
	levels[name] = f().Level
}

// List returns information about all registered scenes, sorted by name.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for name := range factories {
		result = append(result, SceneInfo{
			Name:  name,
			Level: levels[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a scene by name.
func Create(name string) (*scene.Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}

	return f(), nil
}

// Exists checks if a scene with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// IsLevel reports whether the named scene is a playable level.
// Unknown names are not levels.
func IsLevel(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	return levels[name]
}
