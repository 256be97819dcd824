package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/yuyalush/agent-instructions-research/deck"
)

// SlideImageWidth is the default PNG width; 16:9 gives 1080 px height.
const SlideImageWidth = 1920

// ImageExporter writes one PNG per slide. Slides are checked with the same
// rules as the PPTX renderer before they are drawn.
type ImageExporter struct {
	renderer *PPTXRenderer
	width    int
	fontDirs []string
}

// NewImageExporter creates an exporter validating with r. A width <= 0 uses
// SlideImageWidth.
func NewImageExporter(r *PPTXRenderer, width int, fontDirs ...string) *ImageExporter {
	if width <= 0 {
		width = SlideImageWidth
	}
	return &ImageExporter{renderer: r, width: width, fontDirs: fontDirs}
}

// SlideImageName returns the file name of slide n (1-based).
func SlideImageName(n int) string {
	return fmt.Sprintf("slide_%02d.png", n)
}

// fontPaths lists TrueType, OpenType and collection files from the
// configured directories, then the system defaults.
func (e *ImageExporter) fontPaths() []string {
	paths := fontCandidates(e.fontDirs, ".ttf", ".otf", ".ttc")
	paths = append(paths, DefaultNotesFonts...)
	return append(paths, rasterFonts...)
}

// Export writes dir/slide_NN.png for every slide and returns the paths in
// slide order.
func (e *ImageExporter) Export(ctx context.Context, d *deck.Deck, dir string) ([]string, error) {
	if err := checkLayout(d); err != nil {
		return nil, err
	}
	rs, err := NewSlideRasterizer(e.width, e.fontPaths()...)
	if err != nil {
		return nil, deck.WrapRenderError("image", 0, 0, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	paths := make([]string, 0, len(d.Slides))
	for _, s := range d.Slides {
		if err := ctx.Err(); err != nil {
			return nil, deck.WrapRenderError("image", s.Index, 0, err)
		}
		if err := e.renderer.validateSlide(s); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, SlideImageName(s.Index))
		if err := savePNG(path, rs.Rasterize(s)); err != nil {
			return nil, deck.WrapRenderError("image", s.Index, 0, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
