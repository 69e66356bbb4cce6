// Package banner renders names as block art using half-block characters.
package banner

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

var loadedFace font.Face

func init() {
	fnt, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return
	}
	loadedFace = truetype.NewFace(fnt, &truetype.Options{
		Size:    64,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Render draws text with half-block characters (▀▄█) into cols x rows
// terminal cells.
func Render(text string, cols, rows int) string {
	if text == "" || loadedFace == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	bounds, advance := font.BoundString(loadedFace, text)
	textWidth := advance.Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := textWidth + padding*2
	srcHeight := textHeight + padding*2

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	// Baseline so that the glyph bottom sits on the bottom padding.
	y := srcHeight - padding - bounds.Max.Y.Ceil()

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P(padding, y),
	}
	d.DrawString(text)

	scaled := scaleDown(srcImg, cols, rows*2)
	return imageToHalfBlocks(scaled, cols, rows)
}

// Monogram renders the first letter of name.
func Monogram(name string, cols, rows int) string {
	for _, r := range name {
		return GetCached(string(r), cols, rows)
	}
	return ""
}

// scaleDown scales a grayscale image using area averaging
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
			sx2 := max(int(float64(dx+1)*xRatio), sx1+1)
			sy2 := max(int(float64(dy+1)*yRatio), sy1+1)
			sx2 = min(sx2, srcWidth)
			sy2 = min(sy2, srcHeight)

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

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 40

	var result strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable returns true if the font face was loaded.
func IsAvailable() bool {
	return loadedFace != nil
}

var cache = make(map[string]string)

// GetCached returns a cached rendering or renders a new one.
func GetCached(text string, cols, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := fmt.Sprintf("%s|%d|%d", text, cols, rows)
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := Render(text, cols, rows)
	cache[key] = rendered
	return rendered
}
