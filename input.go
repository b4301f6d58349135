package arbor

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Mouse routing ---

// HandleMouseEvent routes ev, given in the root's frame, through the tree
// in post-order: a node's children are offered the event before the node,
// the last-painted child first. Subtrees whose bounds do not contain the
// pointer are skipped. The first widget returning true stops propagation.
// Events queued by handlers are dispatched before returning.
func (u *UI) HandleMouseEvent(ev MouseEvent) bool {
	if u.Len() == 0 {
		return false
	}
	handled := u.routeMouse(u.Root(), Point{}, ev)
	u.DispatchEvents()
	return handled
}

// HitTest returns the deepest, topmost node whose bounds contain (x, y) in
// the root's frame, or false if the pointer is outside the root.
func (u *UI) HitTest(x, y Coord) (ID, bool) {
	if u.Len() == 0 {
		return NoID, false
	}
	return u.hitTest(u.Root(), Point{}, x, y)
}

func (u *UI) hitTest(node ID, offset Point, x, y Coord) (ID, bool) {
	r := u.ctx.geom[node].Translate(offset)
	if !r.Contains(x, y) {
		return NoID, false
	}
	children := u.graph.children[node]
	for i := len(children) - 1; i >= 0; i-- {
		if id, ok := u.hitTest(children[i], r.Origin, x, y); ok {
			return id, true
		}
	}
	return node, true
}

func (u *UI) routeMouse(node ID, offset Point, ev MouseEvent) bool {
	r := u.ctx.geom[node].Translate(offset)
	if !r.Contains(ev.X, ev.Y) {
		return false
	}
	children := u.graph.children[node]
	for i := len(children) - 1; i >= 0; i-- {
		if u.routeMouse(children[i], r.Origin, ev) {
			return true
		}
	}
	local := ev
	local.X -= r.Origin.X
	local.Y -= r.Origin.Y
	hc := HandlerCtx{ID: node, c: &u.ctx}
	return u.widgets[node].Mouse(local, &hc)
}

// --- Platform input (ebiten) ---

const (
	doubleClickInterval = 500 * time.Millisecond
	doubleClickSlop     = 4.0 // pixels
)

var ebitenButtons = [...]struct {
	eb     ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButton3, MouseButtonX1},
	{ebiten.MouseButton4, MouseButtonX2},
}

// clickCounter turns successive presses into click counts.
type clickCounter struct {
	at     time.Time
	pos    Point
	button MouseButton
	count  int
}

// press records a press of button at pos and returns its click count.
func (c *clickCounter) press(now time.Time, pos Point, button MouseButton) int {
	d := pos.Sub(c.pos)
	if c.count > 0 && button == c.button && now.Sub(c.at) <= doubleClickInterval &&
		math32.Abs(d.X) <= doubleClickSlop && math32.Abs(d.Y) <= doubleClickSlop {
		c.count++
	} else {
		c.count = 1
	}
	c.at, c.pos, c.button = now, pos, button
	return c.count
}

// inputPoller translates ebiten's polled input state into engine events.
// Virtual-key codes are ebiten.Key values.
type inputPoller struct {
	keys   []ebiten.Key
	chars  []rune
	clicks clickCounter
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// poll delivers this tick's key presses, typed characters and mouse button
// transitions to u. Keys producing characters arrive first as a VKey, then
// as a Char.
func (p *inputPoller) poll(u *UI) {
	mods := readModifiers()

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		u.HandleKeyEvent(KeyEvent{Key: VKey(int32(k)), Mods: mods})
	}
	p.chars = ebiten.AppendInputChars(p.chars[:0])
	for _, r := range p.chars {
		u.HandleKeyEvent(KeyEvent{Key: Char(r), Mods: mods})
	}

	mx, my := ebiten.CursorPosition()
	pos := Point{Coord(mx), Coord(my)}
	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			count := p.clicks.press(time.Now(), pos, b.button)
			u.HandleMouseEvent(MouseEvent{X: pos.X, Y: pos.Y, Mods: mods, Button: b.button, Count: count})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			u.HandleMouseEvent(MouseEvent{X: pos.X, Y: pos.Y, Mods: mods, Button: b.button})
		}
	}
}
