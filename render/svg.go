package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"honnef.co/go/curveaxis"
)

var svgPath = curveaxis.SVGOptions{MaxPrecision: 2}

// WriteSVG writes the scene as a standalone SVG document. Clipped layers
// reference a clipPath built from the scene's mask.
func WriteSVG(w io.Writer, s *Scene) error {
	if s == nil || s.Size.IsEmpty() {
		return ErrEmptyScene
	}
	bw := bufio.NewWriter(w)
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s">`+"\n",
		num(s.Size.Width), num(s.Size.Height))
	if s.Background != "" {
		fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", attr(s.Background))
	}
	fmt.Fprintf(bw, `<g transform="translate(%s %s)">`+"\n", num(s.Offset.X), num(s.Offset.Y))
	clip := ""
	if len(s.Mask) > 0 {
		fmt.Fprintf(bw, `<defs><clipPath id="mask"><path d="%s"/></clipPath></defs>`+"\n", s.Mask.SVG(svgPath))
		clip = ` clip-path="url(#mask)"`
	}
	for _, l := range s.Layers {
		if len(l.Path) == 0 {
			continue
		}
		fill, stroke := "none", "none"
		if l.Fill != "" {
			fill = attr(l.Fill)
		}
		if l.Stroke != "" {
			stroke = attr(l.Stroke)
		}
		fmt.Fprintf(bw, `<path class="%s" d="%s" fill="%s" stroke="%s" stroke-width="%s"`,
			attr(l.Name), l.Path.SVG(svgPath), fill, stroke, num(l.Width))
		if l.Clipped {
			bw.WriteString(clip)
		}
		bw.WriteString("/>\n")
	}
	for _, t := range s.Texts {
		color := t.Color
		if color == "" {
			color = "#000000"
		}
		x, y := num(t.Pos.X), num(t.Pos.Y)
		fmt.Fprintf(bw, `<text x="%s" y="%s" fill="%s" text-anchor="middle" dominant-baseline="middle"`, x, y, attr(color))
		if t.Rotation != 0 {
			fmt.Fprintf(bw, ` transform="rotate(%s %s %s)"`, num(t.Rotation), x, y)
		}
		bw.WriteString(">")
		if err := xml.EscapeText(bw, []byte(t.Text)); err != nil {
			return err
		}
		bw.WriteString("</text>\n")
	}
	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}

func attr(s string) string {
	var b []byte
	for _, r := range []byte(s) {
		switch r {
		case '"':
			b = append(b, "&quot;"...)
		case '&':
			b = append(b, "&amp;"...)
		case '<':
			b = append(b, "&lt;"...)
		default:
			b = append(b, r)
		}
	}
	return string(b)
}
