package scene

import "sort"

// BackgroundID is the image id every scene uses for its backdrop.
const BackgroundID = "background"

// Assets is the catalogue of images and sounds a scene declares. Identifiers
// resolve only after Load; the runtime never waits on assets inside a tick.
type Assets struct {
	images map[string]string
	sounds map[string]string
	loaded bool
}

// NewAssets creates an empty catalogue.
func NewAssets() *Assets {
	return &Assets{
		images: make(map[string]string),
		sounds: make(map[string]string),
	}
}

// AddBackground registers the background image.
func (a *Assets) AddBackground(path string) *Assets {
	return a.AddImage(BackgroundID, path)
}

// AddImage registers an image under id.
func (a *Assets) AddImage(id, path string) *Assets {
	a.images[id] = path
	return a
}

// AddSound registers a sound effect under id.
func (a *Assets) AddSound(id, path string) *Assets {
	a.sounds[id] = path
	return a
}

// Load marks the catalogue as usable.
func (a *Assets) Load() {
	a.loaded = true
}

// Loaded reports whether Load completed.
func (a *Assets) Loaded() bool {
	return a.loaded
}

// HasImage reports whether an image id currently resolves.
func (a *Assets) HasImage(id string) bool {
	_, ok := a.images[id]
	return a.loaded && ok
}

// HasSound reports whether a sound id currently resolves.
func (a *Assets) HasSound(id string) bool {
	_, ok := a.sounds[id]
	return a.loaded && ok
}

// ImagePath returns the source path registered for an image id.
func (a *Assets) ImagePath(id string) (string, bool) {
	p, ok := a.images[id]
	return p, ok
}

// ImageIDs returns the registered image ids, sorted.
func (a *Assets) ImageIDs() []string {
	return sortedKeys(a.images)
}

// SoundIDs returns the registered sound ids, sorted.
func (a *Assets) SoundIDs() []string {
	return sortedKeys(a.sounds)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
