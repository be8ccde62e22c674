package textmetrics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/legendkit/pkg/fonts"
)

// OpenType measures text with real glyph advances. Font.Family is ignored:
// regular text uses the regular font, bold text the bold font.
// It is safe for concurrent use.
type OpenType struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size float64
}

// NewOpenType returns a measurer backed by the embedded Go fonts.
func NewOpenType() (*OpenType, error) {
	return NewOpenTypeFromData(fonts.GoRegularTTF(), fonts.GoBoldTTF())
}

// NewOpenTypeFromData parses the given TTF/OTF files.
func NewOpenTypeFromData(regular, bold []byte) (*OpenType, error) {
	r, err := opentype.Parse(regular)
	if err != nil {
		return nil, fmt.Errorf("textmetrics: parse regular font: %w", err)
	}
	b, err := opentype.Parse(bold)
	if err != nil {
		return nil, fmt.Errorf("textmetrics: parse bold font: %w", err)
	}
	return &OpenType{regular: r, bold: b, faces: make(map[faceKey]font.Face)}, nil
}

func (o *OpenType) face(f Font) (font.Face, error) {
	key := faceKey{bold: f.Bold, size: f.Pixels()}

	o.mu.Lock()
	defer o.mu.Unlock()
	if face, ok := o.faces[key]; ok {
		return face, nil
	}

	src := o.regular
	if f.Bold {
		src = o.bold
	}
	// DPI 72 makes Size a pixel size.
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("textmetrics: create face at %.2fpx: %w", key.size, err)
	}
	o.faces[key] = face
	return face, nil
}

// MeasureWidth implements Metrics.
func (o *OpenType) MeasureWidth(text string, f Font) (float64, error) {
	face, err := o.face(f)
	if err != nil {
		return 0, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return fixedToFloat64(font.MeasureString(face, text)), nil
}

// EstimateHeight implements Metrics.
func (o *OpenType) EstimateHeight(f Font) (float64, error) {
	face, err := o.face(f)
	if err != nil {
		return 0, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return fixedToFloat64(face.Metrics().Height), nil
}

// Truncate implements Metrics.
func (o *OpenType) Truncate(text string, f Font, maxWidth float64) (string, error) {
	return Truncate(func(s string) (float64, error) { return o.MeasureWidth(s, f) }, text, maxWidth)
}

// Close releases all cached faces.
func (o *OpenType) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for k, face := range o.faces {
		face.Close()
		delete(o.faces, k)
	}
	return nil
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

var _ Metrics = (*OpenType)(nil)
