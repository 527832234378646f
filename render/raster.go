package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/curveaxis"
)

// FontSize is the size, in points at 72 DPI, of raster labels.
const FontSize = 11

var labelFace = sync.OnceValues(func() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
})

// Raster draws the scene. Clipped layers are drawn first, masked by the
// scene's mask, then the other layers, then the texts. Text rotation is
// ignored.
func Raster(s *Scene) (*image.RGBA, error) {
	if s == nil || s.Size.IsEmpty() {
		return nil, ErrEmptyScene
	}
	w := int(math.Ceil(s.Size.Width))
	h := int(math.Ceil(s.Size.Height))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if s.Background != "" {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(gg.Hex(s.Background).Color()), image.Point{}, draw.Src)
	}

	clipped, err := paint(s, w, h, true)
	if err != nil {
		return nil, err
	}
	var mask image.Image
	if len(s.Mask) > 0 {
		if mask, err = rasterMask(s, w, h); err != nil {
			return nil, err
		}
	}
	draw.DrawMask(dst, dst.Bounds(), clipped, image.Point{}, mask, image.Point{}, draw.Over)

	top, err := paint(s, w, h, false)
	if err != nil {
		return nil, err
	}
	draw.Draw(dst, dst.Bounds(), top, image.Point{}, draw.Over)

	if len(s.Texts) > 0 {
		face, err := labelFace()
		if err != nil {
			return nil, fmt.Errorf("loading label font: %w", err)
		}
		for _, t := range s.Texts {
			drawText(dst, face, s.Offset, t)
		}
	}
	return dst, nil
}

// RasterPNG draws the scene and encodes it as PNG.
func RasterPNG(w io.Writer, s *Scene) error {
	img, err := Raster(s)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func newContext(s *Scene, w, h int) *gg.Context {
	dc := gg.NewContext(w, h)
	dc.Clear()
	dc.Translate(s.Offset.X, s.Offset.Y)
	return dc
}

// paint draws the layers whose Clipped field equals clipped onto a
// transparent image.
func paint(s *Scene, w, h int, clipped bool) (image.Image, error) {
	dc := newContext(s, w, h)
	defer dc.Close()
	for _, l := range s.Layers {
		if l.Clipped != clipped || len(l.Path) == 0 {
			continue
		}
		if l.Fill != "" {
			trace(dc, l.Path)
			dc.SetHexColor(l.Fill)
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("filling %s: %w", l.Name, err)
			}
		}
		if l.Stroke != "" {
			trace(dc, l.Path)
			dc.SetHexColor(l.Stroke)
			dc.SetLineWidth(max(l.Width, 0.5))
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("stroking %s: %w", l.Name, err)
			}
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// rasterMask fills the scene's mask opaquely; its alpha channel selects
// where clipped layers show.
func rasterMask(s *Scene, w, h int) (image.Image, error) {
	dc := newContext(s, w, h)
	defer dc.Close()
	trace(dc, s.Mask)
	dc.SetRGBA(1, 1, 1, 1)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("filling mask: %w", err)
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func trace(dc *gg.Context, p curveaxis.BezPath) {
	dc.ClearPath()
	for el := range p.Elements() {
		switch el.Kind {
		case curveaxis.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case curveaxis.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case curveaxis.ClosePathKind:
			dc.ClosePath()
		}
	}
}

func drawText(dst draw.Image, face font.Face, offset curveaxis.Vec2, t Text) {
	width := font.MeasureString(face, t.Text)
	ascent := face.Metrics().Ascent
	pos := t.Pos.Translate(offset)
	color := "#000000"
	if t.Color != "" {
		color = t.Color
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(gg.Hex(color).Color()),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(pos.X*64) - width/2,
			Y: fixed.Int26_6(pos.Y*64) + ascent/2,
		},
	}
	d.DrawString(t.Text)
}
