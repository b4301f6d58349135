package arbor

// Padding insets a single child. Insets larger than the available space give
// the child negative constraints; they are passed on as is.
type Padding struct {
	BaseWidget

	Left, Right, Top, Bottom Coord
}

// UniformPadding creates a Padding with the same inset on every edge.
func UniformPadding(p Coord) *Padding {
	return &Padding{Left: p, Right: p, Top: p, Bottom: p}
}

// Horizontal returns the sum of the left and right insets.
func (p *Padding) Horizontal() Coord { return p.Left + p.Right }

// Vertical returns the sum of the top and bottom insets.
func (p *Padding) Vertical() Coord { return p.Top + p.Bottom }

// Layout shrinks the constraints by the insets, measures the child, places it
// at (Left, Top) and reports the child size grown by the insets.
func (p *Padding) Layout(bc BoxConstraints, children []ID, size *Size, ctx *LayoutCtx) LayoutResult {
	if size != nil {
		ctx.PositionChild(children[0], Point{p.Left, p.Top})
		return SizeResult(Size{
			Width:  size.Width + p.Horizontal(),
			Height: size.Height + p.Vertical(),
		})
	}
	child := BoxConstraints{
		MinWidth:  bc.MinWidth - p.Horizontal(),
		MaxWidth:  bc.MaxWidth - p.Horizontal(),
		MinHeight: bc.MinHeight - p.Vertical(),
		MaxHeight: bc.MaxHeight - p.Vertical(),
	}
	if globalDebug && (child.MaxWidth < 0 || child.MaxHeight < 0) {
		debugLogger().Warn("padding exceeds available space",
			"constraints", bc.String(), "child", child.String())
	}
	return RequestChild(children[0], child)
}
