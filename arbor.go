package arbor

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// ID is a dense handle into every per-node table of a Tree. IDs are assigned
// in increasing order starting at 0 and are never reused.
type ID int

// NoID denotes the absence of a node (no focus, no parent).
const NoID ID = -1

// Coord is the scalar used for all layout geometry.
type Coord = float32

// Point is a position in the coordinate frame of a node's parent.
type Point struct {
	X, Y Coord
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Size is a width and height pair. Negative components are representable;
// they arise from inverted constraints and are not corrected.
type Size struct {
	Width, Height Coord
}

// ToPoint reinterprets the size as a point, (Width, Height).
func (s Size) ToPoint() Point {
	return Point{s.Width, s.Height}
}

// Max returns the component-wise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{math32.Max(s.Width, o.Width), math32.Max(s.Height, o.Height)}
}

// Min returns the component-wise minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{math32.Min(s.Width, o.Width), math32.Min(s.Height, o.Height)}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	Origin Point
	Size   Size
}

// RectXYWH builds a Rect from its origin and extents.
func RectXYWH(x, y, w, h Coord) Rect {
	return Rect{Origin: Point{x, y}, Size: Size{w, h}}
}

// Translate returns r moved by offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{Origin: r.Origin.Add(offset), Size: r.Size}
}

// MaxX returns the right edge.
func (r Rect) MaxX() Coord { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() Coord { return r.Origin.Y + r.Size.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the top and left edges are inside; points on the bottom and right
// edges are not, so adjacent siblings never both contain a point.
func (r Rect) Contains(x, y Coord) bool {
	return x >= r.Origin.X && x < r.MaxX() &&
		y >= r.Origin.Y && y < r.MaxY()
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a paint backend.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default box color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorFromStd converts any image/color value to a Color.
func ColorFromStd(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	_, _, _, a := c.RGBA()
	if !ok {
		// colorful rejects fully transparent colors.
		return Color{}
	}
	return Color{cf.R, cf.G, cf.B, float64(a) / 0xffff}
}

// ToRGBA converts the color to a premultiplied color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Hex formats the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonX1                        // first extra button
	MouseButtonX2                        // second extra button
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	case MouseButtonX1:
		return "x1"
	case MouseButtonX2:
		return "x2"
	}
	return "unknown"
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint32

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
