// Package media loads the game assets from disk: level layers, actor
// sprite sequences with collision masks, and the HUD font.
package media

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene dimensions in logical pixels. The window scales the scene with the
// aspect ratio preserved.
const (
	SceneWidth  = 640
	SceneHeight = 480
)

// Sprite is one animation frame with its collision metadata. Image may be
// nil in logic-only contexts (tests); the game logic touches only the
// metadata.
type Sprite struct {
	Image *ebiten.Image
	Mask  *Mask

	Width  int
	Height int

	// Offsets of the first and last solid column, for edge checks.
	FirstSolidX int
	LastSolidX  int
}

// Level bundles the layered appearance of one level.
type Level struct {
	Sky         *ebiten.Image
	BgDecor     *ebiten.Image
	MiddleDecor *ebiten.Image
	Foreground  *ebiten.Image
	Ground      *ebiten.Image
}

// Media is everything loaded from the asset directory.
type Media struct {
	Levels     []Level
	RunawayRun []Sprite
	ChaserRun  []Sprite
	Font       *text.GoTextFaceSource
}

// levelLayers are the files every level directory must contain.
var levelLayers = []string{"sky.png", "bg_decor.png", "middle_decor.png", "foreground.png", "ground.png"}

// Load reads all assets from dir. The expected layout is
// images/level*/{sky,bg_decor,middle_decor,foreground,ground}.png,
// images/pirate/run*.png, images/troll/run*.png and
// fonts/freesansbold.ttf.
func Load(dir string) (*Media, error) {
	imagesDir := filepath.Join(dir, "images")

	levelDirs, err := findLevelDirs(imagesDir)
	if err != nil {
		return nil, err
	}
	if len(levelDirs) == 0 {
		return nil, fmt.Errorf("no level directories under %s", imagesDir)
	}

	m := &Media{}
	for _, levelDir := range levelDirs {
		level, err := loadLevel(levelDir)
		if err != nil {
			return nil, err
		}
		m.Levels = append(m.Levels, level)
	}

	if m.RunawayRun, err = loadRun(filepath.Join(imagesDir, "pirate")); err != nil {
		return nil, err
	}
	if m.ChaserRun, err = loadRun(filepath.Join(imagesDir, "troll")); err != nil {
		return nil, err
	}

	fontPath := filepath.Join(dir, "fonts", "freesansbold.ttf")
	if m.Font, err = loadFont(fontPath); err != nil {
		return nil, err
	}

	return m, nil
}

// findLevelDirs lists the level* directories under imagesDir, sorted by
// name so level01 precedes level02.
func findLevelDirs(imagesDir string) ([]string, error) {
	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", imagesDir, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "level") {
			dirs = append(dirs, filepath.Join(imagesDir, e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func loadLevel(levelDir string) (Level, error) {
	images := make([]*ebiten.Image, len(levelLayers))
	for i, name := range levelLayers {
		img, _, err := loadImage(filepath.Join(levelDir, name))
		if err != nil {
			return Level{}, err
		}
		images[i] = img
	}
	return Level{
		Sky:         images[0],
		BgDecor:     images[1],
		MiddleDecor: images[2],
		Foreground:  images[3],
		Ground:      images[4],
	}, nil
}

// loadRun loads the run*.png frames of one actor, sorted by file name.
func loadRun(actorDir string) ([]Sprite, error) {
	paths, err := filepath.Glob(filepath.Join(actorDir, "run*.png"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", actorDir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no run frames in %s", actorDir)
	}
	sort.Strings(paths)

	sprites := make([]Sprite, 0, len(paths))
	for _, path := range paths {
		eimg, img, err := loadImage(path)
		if err != nil {
			return nil, err
		}
		sprite, err := NewSprite(img)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		sprite.Image = eimg
		sprites = append(sprites, sprite)
	}
	return sprites, nil
}

// NewSprite computes the collision metadata of a decoded frame. The
// Ebitengine image is attached by the caller; logic-only callers can leave
// it nil.
func NewSprite(img image.Image) (Sprite, error) {
	mask := MaskFromImage(img)
	first, last, ok := mask.SolidColumns()
	if !ok {
		return Sprite{}, fmt.Errorf("fully transparent sprite")
	}
	return Sprite{
		Mask:        mask,
		Width:       mask.Width(),
		Height:      mask.Height(),
		FirstSolidX: first,
		LastSolidX:  last,
	}, nil
}

func loadImage(path string) (*ebiten.Image, image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), img, nil
}

func loadFont(path string) (*text.GoTextFaceSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	defer f.Close()

	src, err := text.NewGoTextFaceSource(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return src, nil
}
