package backend

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/remeh/sizedwaitgroup"

	"euikit/eui"
)

// Textures owns the ebiten images behind eui texture ids.
type Textures struct {
	images map[eui.TextureID]*ebiten.Image
	next   eui.TextureID

	// Workers bounds the parallel decodes of LoadTextures.
	Workers int
}

func NewTextures() *Textures {
	return &Textures{images: map[eui.TextureID]*ebiten.Image{}, Workers: runtime.NumCPU()}
}

func (t *Textures) image(id eui.TextureID) *ebiten.Image { return t.images[id] }

func (t *Textures) Len() int { return len(t.images) }

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (t *Textures) LoadTexture(path string) (eui.Texture, error) {
	img, err := decodeFile(path)
	if err != nil {
		return eui.Texture{}, err
	}
	return t.NewTexture(img)
}

func (t *Textures) NewTexture(img image.Image) (eui.Texture, error) {
	if img == nil {
		return eui.Texture{}, errors.New("nil image")
	}
	b := img.Bounds()
	if b.Empty() {
		return eui.Texture{}, fmt.Errorf("empty image %v", b)
	}
	t.next++
	id := t.next
	t.images[id] = ebiten.NewImageFromImage(img)
	return eui.Texture{ID: id, Size: eui.Pt(float32(b.Dx()), float32(b.Dy()))}, nil
}

// LoadTextures decodes paths concurrently and uploads the results on the
// calling goroutine. Files that fail are left out of the map and their
// errors are joined.
func (t *Textures) LoadTextures(paths []string) (map[string]eui.Texture, error) {
	type result struct {
		img image.Image
		err error
	}
	results := make([]result, len(paths))
	swg := sizedwaitgroup.New(max(t.Workers, 1))
	for i, p := range paths {
		swg.Add()
		go func() {
			defer swg.Done()
			img, err := decodeFile(p)
			results[i] = result{img, err}
		}()
	}
	swg.Wait()

	out := make(map[string]eui.Texture, len(paths))
	var errs []error
	for i, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		tex, err := t.NewTexture(r.img)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", paths[i], err))
			continue
		}
		out[paths[i]] = tex
	}
	return out, errors.Join(errs...)
}

// Release disposes every image.
func (t *Textures) Release() {
	for id, img := range t.images {
		img.Deallocate()
		delete(t.images, id)
	}
}

