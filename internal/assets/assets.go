// Package assets finds and prepares the pictures shown during a round: the
// country photo, the default picture and the world map.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/explorer/internal/names"
	"golang.org/x/image/draw"
)

const (
	// DisplayWidth and DisplayHeight are the size of the picture area
	DisplayWidth  = 400
	DisplayHeight = 250

	// EnlargedWidth is the width of the enlarged world map; height keeps the aspect ratio
	EnlargedWidth = 800

	// DefaultImageName is shown when a country has no picture of its own
	DefaultImageName = "padrao.jpg"

	// WorldMapName is the world map picture
	WorldMapName = "mapa_mundo.jpg"
)

// Extensions are tried in order for every filename variant
var Extensions = []string{".jpg", ".jpeg", ".png", ".JPG", ".JPEG", ".PNG"}

// Source tells where a picture came from
type Source string

const (
	SourceFile        Source = "file"
	SourceDefault     Source = "default"
	SourcePlaceholder Source = "placeholder"
)

// Picture is a ready-to-show image, or the text to show instead
type Picture struct {
	// Image is scaled to the requested size; nil for placeholders
	Image image.Image

	// Path is the file the image was read from
	Path string

	// Source tells how the picture was resolved
	Source Source

	// Placeholder is the text to show when there is no image
	Placeholder string

	// Tried lists the file stems that were looked up
	Tried []string
}

// IsPlaceholder reports whether only text is available
func (p *Picture) IsPlaceholder() bool {
	return p.Image == nil
}

// Config holds configuration for the loader
type Config struct {
	// Dir is the directory containing the pictures
	Dir string

	// Width and Height override the display size
	Width  int
	Height int
}

// Loader resolves pictures inside a directory
type Loader struct {
	dir    string
	width  int
	height int
}

// New creates a picture loader. A missing directory is not an error; every
// lookup then degrades to a placeholder.
func New(cfg *Config) (*Loader, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dir == "" {
		return nil, errors.New("images directory cannot be empty")
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = DisplayWidth
	}
	if height <= 0 {
		height = DisplayHeight
	}

	return &Loader{
		dir:    cfg.Dir,
		width:  width,
		height: height,
	}, nil
}

// ListFiles returns the sorted names of the files in the images directory
func (l *Loader) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read images directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	return files, nil
}

// LogAvailable logs the picture files found, or a warning when the directory is missing
func (l *Loader) LogAvailable() {
	files, err := l.ListFiles()
	if err != nil {
		log.Printf("Warning: images directory %q not available: %v", l.dir, err)
		return
	}
	log.Printf("Images available in %s (%d): %s", l.dir, len(files), strings.Join(files, ", "))
}

// FindCountryFile returns the first existing file for the country, and the stems tried
func (l *Loader) FindCountryFile(country string) (string, []string) {
	variants := names.FileVariants(country)
	for _, v := range variants {
		for _, ext := range Extensions {
			path := filepath.Join(l.dir, v+ext)
			if isFile(path) {
				return path, variants
			}
		}
	}
	return "", variants
}

// LoadCountry returns the country picture, the default picture, or a placeholder text
func (l *Loader) LoadCountry(country string) *Picture {
	path, tried := l.FindCountryFile(country)
	source := SourceFile

	if path == "" {
		log.Printf("No image for %q, tried: %s", country, strings.Join(withExt(tried, ".jpg"), ", "))

		path = filepath.Join(l.dir, DefaultImageName)
		source = SourceDefault
		if !isFile(path) {
			return &Picture{
				Source: SourcePlaceholder,
				Tried:  tried,
				Placeholder: fmt.Sprintf("[Image of %s not available]\n\nHint: the file should be named:\n%s.jpg",
					country, firstOr(tried, country)),
			}
		}
	}

	img, err := l.decodeScaled(path, l.width, l.height)
	if err != nil {
		log.Printf("Failed to load image %s: %v", path, err)
		return &Picture{
			Path:        path,
			Source:      SourcePlaceholder,
			Tried:       tried,
			Placeholder: fmt.Sprintf("[Error loading image of %s]\n\n%v", country, err),
		}
	}

	return &Picture{
		Image:  img,
		Path:   path,
		Source: source,
		Tried:  tried,
	}
}

// LoadWorldMap returns the world map at display size
func (l *Loader) LoadWorldMap() *Picture {
	return l.loadWorldMap(l.width, l.height)
}

// LoadWorldMapEnlarged returns the world map EnlargedWidth pixels wide, keeping its aspect ratio
func (l *Loader) LoadWorldMapEnlarged() *Picture {
	return l.loadWorldMap(EnlargedWidth, 0)
}

func (l *Loader) loadWorldMap(width, height int) *Picture {
	path := filepath.Join(l.dir, WorldMapName)
	if !isFile(path) {
		return &Picture{
			Source:      SourcePlaceholder,
			Placeholder: fmt.Sprintf("[Image '%s' not found]", WorldMapName),
		}
	}

	img, err := l.decodeScaled(path, width, height)
	if err != nil {
		log.Printf("Failed to load world map: %v", err)
		return &Picture{
			Path:        path,
			Source:      SourcePlaceholder,
			Placeholder: fmt.Sprintf("[Error loading world map: %v]", err),
		}
	}

	return &Picture{
		Image:  img,
		Path:   path,
		Source: SourceFile,
	}
}

// decodeScaled reads an image and scales it; a height of 0 keeps the aspect ratio
func (l *Loader) decodeScaled(path string, width, height int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	if height == 0 {
		return ScaleToWidth(src, width), nil
	}
	return Scale(src, width, height), nil
}

// Scale resizes img to exactly width x height
func Scale(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// ScaleToWidth resizes img to the given width, keeping its aspect ratio
func ScaleToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 {
		return Scale(img, width, 1)
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	return Scale(img, width, height)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func withExt(stems []string, ext string) []string {
	out := make([]string, len(stems))
	for i, s := range stems {
		out[i] = s + ext
	}
	return out
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
