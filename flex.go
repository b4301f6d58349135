package arbor

import "github.com/chewxy/math32"

// Axis is the direction along which a Flex distributes its children.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// major returns the extent of s along the axis.
func (a Axis) major(s Size) Coord {
	if a == Vertical {
		return s.Height
	}
	return s.Width
}

// minor returns the extent of s across the axis.
func (a Axis) minor(s Size) Coord {
	if a == Vertical {
		return s.Width
	}
	return s.Height
}

// pack builds a Size from major and minor extents.
func (a Axis) pack(major, minor Coord) Size {
	if a == Vertical {
		return Size{Width: minor, Height: major}
	}
	return Size{Width: major, Height: minor}
}

// flexPass is the continuation state of one layout pass. It is reset every
// time the Flex is laid out from scratch.
type flexPass struct {
	// ix is the index of the child currently being measured.
	ix           int
	majorPerFlex Coord
	minor        Coord
}

// Flex lays its children out in a line, giving each an equal share of the
// maximum major extent. Children are stacked from the start edge with no
// gaps and are aligned to the start of the minor axis.
type Flex struct {
	BaseWidget

	Axis Axis

	pass flexPass
}

// NewRow creates a Flex that lays children out left to right.
func NewRow() *Flex {
	return &Flex{Axis: Horizontal}
}

// NewColumn creates a Flex that lays children out top to bottom.
func NewColumn() *Flex {
	return &Flex{Axis: Vertical}
}

// Layout implements the equal-share flex policy. The reported size is the
// full maximum major extent, whatever the children consumed, and the largest
// minor extent among the children (at least the minimum minor constraint).
func (f *Flex) Layout(bc BoxConstraints, children []ID, size *Size, ctx *LayoutCtx) LayoutResult {
	if size == nil {
		if len(children) == 0 {
			return SizeResult(bc.Min())
		}
		f.pass = flexPass{
			minor:        f.Axis.minor(bc.Min()),
			majorPerFlex: f.Axis.major(bc.Max()) / Coord(len(children)),
		}
	} else {
		f.pass.minor = math32.Max(f.pass.minor, f.Axis.minor(*size))
		f.pass.ix++
		if f.pass.ix == len(children) {
			var major Coord
			for _, child := range children {
				ctx.PositionChild(child, f.Axis.pack(major, 0).ToPoint())
				major += f.pass.majorPerFlex
			}
			return SizeResult(f.Axis.pack(f.Axis.major(bc.Max()), f.pass.minor))
		}
	}
	return RequestChild(children[f.pass.ix], f.childConstraints(bc))
}

// childConstraints is bc made tight on the major axis at the per-child share.
func (f *Flex) childConstraints(bc BoxConstraints) BoxConstraints {
	child := bc
	if f.Axis == Vertical {
		child.MinHeight = f.pass.majorPerFlex
		child.MaxHeight = f.pass.majorPerFlex
	} else {
		child.MinWidth = f.pass.majorPerFlex
		child.MaxWidth = f.pass.majorPerFlex
	}
	return child
}
