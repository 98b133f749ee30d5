package media

import "image"

// maskThreshold is the alpha value above which a pixel counts as solid.
const maskThreshold = 0x7f

// Mask is a per-pixel bitmask of the opaque region of a sprite, used for
// collision checks between actors.
type Mask struct {
	width  int
	height int
	// one row of bits per y, packed into uint64 words
	rows        [][]uint64
	wordsPerRow int
}

// MaskFromImage builds a mask from the alpha channel of an image. Pixels
// with alpha above 50% are solid.
func MaskFromImage(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	words := (w + 63) / 64

	m := &Mask{width: w, height: h, wordsPerRow: words}
	m.rows = make([][]uint64, h)
	for y := 0; y < h; y++ {
		m.rows[y] = make([]uint64, words)
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels.
			if a>>8 > maskThreshold {
				m.rows[y][x/64] |= 1 << (uint(x) % 64)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// At reports whether the pixel at (x, y) is solid. Out-of-range pixels are
// not solid.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.rows[y][x/64]&(1<<(uint(x)%64)) != 0
}

// SolidColumns returns the first and last x that contain a solid pixel.
// ok is false for a fully transparent mask.
func (m *Mask) SolidColumns() (first, last int, ok bool) {
	first, last = -1, -1
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.At(x, y) {
				if first == -1 || x < first {
					first = x
				}
				if x > last {
					last = x
				}
			}
		}
	}
	return first, last, first != -1
}

// Overlaps reports whether any solid pixel of m coincides with a solid
// pixel of other, with other offset by (dx, dy) relative to m.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	// Intersect the two pixel ranges in m's coordinates.
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.width, other.width+dx)
	y1 := min(m.height, other.height+dy)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
