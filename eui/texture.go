package eui

import (
	"fmt"
	"image"
	"log"
	"sort"

	"github.com/dustin/go-humanize"
)

// TextureID names a texture owned by the backend. Zero means a solid fill.
type TextureID uint32

type Texture struct {
	ID   TextureID
	Size Point
}

func (t Texture) Valid() bool { return t.ID != 0 }

// TextureProvider is implemented by backends that own GPU images.
type TextureProvider interface {
	LoadTexture(path string) (Texture, error)
	NewTexture(img image.Image) (Texture, error)
}

// BatchLoader is an optional TextureProvider extension for loading many
// files at once.
type BatchLoader interface {
	LoadTextures(paths []string) (map[string]Texture, error)
}

// TextureCache loads each path once. Failures are logged once and yield an
// invalid texture.
type TextureCache struct {
	provider TextureProvider
	byName   map[string]Texture
	failed   map[string]error
}

func NewTextureCache(p TextureProvider) *TextureCache {
	return &TextureCache{provider: p, byName: map[string]Texture{}, failed: map[string]error{}}
}

// Get returns the texture for path, loading it on first use.
func (tc *TextureCache) Get(path string) Texture {
	if t, ok := tc.byName[path]; ok {
		return t
	}
	if _, ok := tc.failed[path]; ok {
		return Texture{}
	}
	if tc.provider == nil {
		tc.fail(path, ErrNoTextureProvider)
		return Texture{}
	}
	t, err := tc.provider.LoadTexture(path)
	if err != nil {
		tc.fail(path, err)
		return Texture{}
	}
	tc.byName[path] = t
	return t
}

func (tc *TextureCache) fail(path string, err error) {
	tc.failed[path] = err
	log.Printf("texture %s: %v", path, err)
}

// Err returns the load error recorded for path, if any.
func (tc *TextureCache) Err(path string) error { return tc.failed[path] }

// Register uploads img under name, replacing nothing that already exists.
func (tc *TextureCache) Register(name string, img image.Image) Texture {
	if t, ok := tc.byName[name]; ok {
		return t
	}
	if tc.provider == nil {
		return Texture{}
	}
	t, err := tc.provider.NewTexture(img)
	if err != nil {
		tc.fail(name, err)
		return Texture{}
	}
	tc.byName[name] = t
	return t
}

// Preload loads paths up front, in parallel when the provider supports it.
func (tc *TextureCache) Preload(paths []string) {
	var todo []string
	for _, p := range paths {
		if _, ok := tc.byName[p]; !ok {
			todo = append(todo, p)
		}
	}
	if len(todo) == 0 {
		return
	}
	bl, ok := tc.provider.(BatchLoader)
	if !ok {
		for _, p := range todo {
			tc.Get(p)
		}
		return
	}
	got, err := bl.LoadTextures(todo)
	if err != nil {
		log.Printf("preload textures: %v", err)
	}
	for _, p := range todo {
		if t, ok := got[p]; ok {
			tc.byName[p] = t
		} else if _, failed := tc.failed[p]; !failed {
			tc.failed[p] = fmt.Errorf("not loaded")
		}
	}
}

func (tc *TextureCache) Len() int { return len(tc.byName) }

// Bytes estimates the memory held by the cached textures at 4 bytes per
// texel.
func (tc *TextureCache) Bytes() uint64 {
	var n uint64
	for _, t := range tc.byName {
		n += uint64(t.Size.X) * uint64(t.Size.Y) * 4
	}
	return n
}

// Names lists the cached texture names in sorted order.
func (tc *TextureCache) Names() []string {
	out := make([]string, 0, len(tc.byName))
	for n := range tc.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (tc *TextureCache) String() string {
	return fmt.Sprintf("%d textures, %s, %d failed", len(tc.byName), humanize.Bytes(tc.Bytes()), len(tc.failed))
}
