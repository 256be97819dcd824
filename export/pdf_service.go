package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Handout layout on A4 portrait, in millimetres. A 16:9 slide scaled to the
// 180 mm content width is about 101 mm tall, so two fit per page.
const (
	handoutMargin      = 15
	handoutImageHeight = 101
	handoutCaption     = 7
)

// PDFHandoutService lays slide images out as a printable handout using maroto.
type PDFHandoutService struct{}

// NewPDFHandoutService creates a new PDF handout service
func NewPDFHandoutService() *PDFHandoutService {
	return &PDFHandoutService{}
}

// Export builds a handout with one captioned row per slide image. Images
// must be PNG and in slide order.
func (s *PDFHandoutService) Export(images [][]byte) ([]byte, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no slide images to export")
	}

	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(handoutMargin).
		WithTopMargin(handoutMargin).
		WithRightMargin(handoutMargin).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   9,
		}).
		Build()

	m := maroto.New(cfg)
	for i, img := range images {
		s.addSlide(m, img, i+1, len(images))
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func (s *PDFHandoutService) addSlide(m core.Maroto, img []byte, n, total int) {
	m.AddRow(handoutCaption,
		col.New(12).Add(
			text.New(fmt.Sprintf("Slide %d / %d", n, total), props.Text{
				Family: fontfamily.Arial,
				Size:   9,
				Style:  fontstyle.Bold,
				Align:  align.Left,
				Color:  &props.Color{Red: 100, Green: 116, Blue: 139},
			}),
		),
	)
	m.AddRow(handoutImageHeight,
		col.New(12).Add(
			image.NewFromBytes(img, extension.Png),
		),
	)
	m.AddRow(4)
}
