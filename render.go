package arbor

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandClear   CommandType = iota // erase the target
	CommandFill                       // fill a rectangle with a solid color
	CommandPresent                    // end of frame
)

func (t CommandType) String() string {
	switch t {
	case CommandClear:
		return "clear"
	case CommandFill:
		return "fill"
	case CommandPresent:
		return "present"
	}
	return "unknown"
}

// RenderCommand is a single draw instruction recorded by a CommandBuffer.
type RenderCommand struct {
	Type  CommandType
	Rect  Rect
	Color Color
}

// CommandBuffer is a Painter that records draw calls instead of executing
// them. It is the paint sink for headless runs and tests, and can replay the
// recorded frame onto an ebiten image with Submit.
type CommandBuffer struct {
	// ClearColor is what Submit fills the target with for a clear command.
	// The zero value clears to transparent.
	ClearColor Color

	size     Size
	commands []RenderCommand
}

// NewCommandBuffer creates a buffer reporting the given surface size.
func NewCommandBuffer(size Size) *CommandBuffer {
	return &CommandBuffer{size: size, commands: make([]RenderCommand, 0, 64)}
}

// FillRect records a fill.
func (b *CommandBuffer) FillRect(r Rect, c Color) {
	b.commands = append(b.commands, RenderCommand{Type: CommandFill, Rect: r, Color: c})
}

// Clear drops everything recorded so far and records a clear.
func (b *CommandBuffer) Clear() {
	b.commands = append(b.commands[:0], RenderCommand{Type: CommandClear})
}

// Present records the end of the frame.
func (b *CommandBuffer) Present() {
	b.commands = append(b.commands, RenderCommand{Type: CommandPresent})
}

// Size returns the surface size given at construction or by Resize.
func (b *CommandBuffer) Size() Size {
	return b.size
}

// Resize changes the reported surface size.
func (b *CommandBuffer) Resize(size Size) {
	b.size = size
}

// Commands returns the recorded commands. The returned slice MUST NOT be
// mutated and is only valid until the next Clear.
func (b *CommandBuffer) Commands() []RenderCommand {
	return b.commands
}

// Fills returns only the recorded fill commands, in order.
func (b *CommandBuffer) Fills() []RenderCommand {
	var fills []RenderCommand
	for _, cmd := range b.commands {
		if cmd.Type == CommandFill {
			fills = append(fills, cmd)
		}
	}
	return fills
}

// Reset empties the buffer without recording anything.
func (b *CommandBuffer) Reset() {
	b.commands = b.commands[:0]
}

// Submit replays the recorded commands onto target.
func (b *CommandBuffer) Submit(target *ebiten.Image) {
	for i := range b.commands {
		cmd := &b.commands[i]
		switch cmd.Type {
		case CommandClear:
			clearImage(target, b.ClearColor)
		case CommandFill:
			fillImageRect(target, cmd.Rect, cmd.Color)
		}
	}
}

// ImagePainter paints straight into an ebiten image.
type ImagePainter struct {
	Target *ebiten.Image
	// ClearColor is used by Clear. The zero value clears to transparent.
	ClearColor Color
}

// NewImagePainter wraps target.
func NewImagePainter(target *ebiten.Image) *ImagePainter {
	return &ImagePainter{Target: target}
}

// FillRect fills r on the target image.
func (p *ImagePainter) FillRect(r Rect, c Color) {
	fillImageRect(p.Target, r, c)
}

// Clear fills the target with ClearColor.
func (p *ImagePainter) Clear() {
	clearImage(p.Target, p.ClearColor)
}

// Present is a no-op: ebiten presents the screen after Draw returns.
func (p *ImagePainter) Present() {}

// Size returns the target image bounds.
func (p *ImagePainter) Size() Size {
	b := p.Target.Bounds()
	return Size{Coord(b.Dx()), Coord(b.Dy())}
}

// pixelRect snaps r outward to whole pixels.
func pixelRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.Origin.X)),
		int(math32.Floor(r.Origin.Y)),
		int(math32.Ceil(r.MaxX())),
		int(math32.Ceil(r.MaxY())),
	)
}

func clearImage(target *ebiten.Image, c Color) {
	if c == (Color{}) {
		target.Clear()
		return
	}
	target.Fill(c.ToRGBA())
}

func fillImageRect(target *ebiten.Image, r Rect, c Color) {
	if r.Empty() {
		return
	}
	pr := pixelRect(r).Intersect(target.Bounds())
	if pr.Empty() {
		return
	}
	target.SubImage(pr).(*ebiten.Image).Fill(c.ToRGBA())
}
