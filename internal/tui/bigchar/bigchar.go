// Package bigchar renders Hangul and hanja as large block art using
// half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths are system fonts that cover both Hangul and CJK ideographs.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/AppleSDGothicNeo.ttc",
	"/System/Library/Fonts/Supplemental/AppleGothic.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\malgun.ttf",
	"C:\\Windows\\Fonts\\msyh.ttc",
}

const cacheSize = 128

// Renderer draws glyphs with one font face. A font.Face is not safe for
// concurrent use, so drawing is serialized; results are cached.
type Renderer struct {
	mu    sync.Mutex
	face  font.Face
	cache *lru.Cache[string, string]
}

// NewRenderer parses a TrueType/OpenType font or collection.
func NewRenderer(data []byte) (*Renderer, error) {
	fnt, err := parseFont(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: 64, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Renderer{face: face, cache: cache}, nil
}

func parseFont(data []byte) (*opentype.Font, error) {
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		return coll.Font(0)
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return fnt, nil
}

// System loads the first usable font from the usual system locations.
// It returns nil when none is found; a nil *Renderer renders nothing.
func System() *Renderer {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if r, err := NewRenderer(data); err == nil {
			return r
		}
	}
	return nil
}

// Available reports whether r can draw.
func (r *Renderer) Available() bool {
	return r != nil && r.face != nil
}

// Word renders each rune of text as a cols x rows block and joins them
// side by side with a one-cell gap. Results are cached.
func (r *Renderer) Word(text string, cols, rows int) string {
	if !r.Available() || text == "" || cols <= 0 || rows <= 0 {
		return ""
	}

	key := fmt.Sprintf("%s/%dx%d", text, cols, rows)
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	var blocks [][]string
	for _, ch := range text {
		if ch == ' ' {
			continue
		}
		blocks = append(blocks, strings.Split(r.block(ch, cols, rows), "\n"))
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for i, block := range blocks {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(block[row])
		}
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}

	out := b.String()
	r.cache.Add(key, out)
	return out
}

// block renders a single rune.
func (r *Renderer) block(ch rune, cols, rows int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	bounds, _, ok := r.face.GlyphBounds(ch)
	if !ok {
		return blank(cols, rows)
	}
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := max(glyphWidth+padding*2, 64)
	srcHeight := max(glyphHeight+padding*2, 64)

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	x := (srcWidth-glyphWidth)/2 - bounds.Min.X.Floor()
	y := srcHeight - padding - bounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(string(ch))

	// Each terminal cell holds two vertical pixels.
	return halfBlocks(scaleDown(src, cols, rows*2), cols, rows)
}

func blank(cols, rows int) string {
	line := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// threshold is the brightness above which a pixel is "on".
const threshold = 40

// halfBlocks converts a grayscale image to ▀▄█ art.
func halfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return 0
	}
	return img.GrayAt(x, y).Y
}
