package arbor

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(logs *bytes.Buffer) *UI {
	u := NewUI()
	u.SetLogger(slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return u
}

// keyEcho queues every key it receives for its own listeners.
type keyEcho struct {
	BaseWidget
}

func (keyEcho) Key(ev KeyEvent, ctx *HandlerCtx) bool {
	ctx.SendEvent(ev)
	return true
}

func TestHandleKeyEventNoFocus(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	id := u.Add(keyEcho{})
	u.LayoutCtx().SendEvent(id, "pending")

	called := false
	AddListener(u, id, func(s string, ctx *ListenerCtx) { called = true })

	assert.False(t, u.HandleKeyEvent(KeyEvent{Key: VKey(1)}))
	assert.False(t, called, "no dispatch without focus")
	assert.Equal(t, 1, u.LayoutCtx().Pending())
}

func TestHandleKeyEventFocused(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	other := u.Add(keyEcho{})
	id := u.Add(keyEcho{})
	u.SetFocus(id)

	var got []KeyEvent
	AddListener(u, id, func(ev KeyEvent, ctx *ListenerCtx) { got = append(got, ev) })
	AddListener(u, other, func(ev KeyEvent, ctx *ListenerCtx) { t.Error("unfocused node got a key") })

	assert.True(t, u.HandleKeyEvent(KeyEvent{Key: Char('q'), Mods: ModCtrl}))
	assert.Equal(t, []KeyEvent{{Key: Char('q'), Mods: ModCtrl}}, got)
	assert.Equal(t, 0, u.LayoutCtx().Pending())
}

func TestHandleKeyEventUnhandled(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	id := u.Add(NewBox(ColorWhite))
	u.SetFocus(id)
	assert.False(t, u.HandleKeyEvent(KeyEvent{Key: VKey(1)}))
}

func TestDispatchRegistrationOrder(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	id := u.Add(NewBox(ColorWhite))

	var order []string
	AddListener(u, id, func(s string, ctx *ListenerCtx) { order = append(order, "first:"+s) })
	AddListener(u, id, func(s string, ctx *ListenerCtx) { order = append(order, "second:"+s) })

	u.LayoutCtx().SendEvent(id, "a")
	u.LayoutCtx().SendEvent(id, "b")
	u.DispatchEvents()

	assert.Equal(t, []string{"first:a", "second:a", "first:b", "second:b"}, order)
}

func TestDispatchRounds(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	a := u.Add(NewBox(ColorWhite))
	b := u.Add(NewBox(ColorWhite))

	var order []string
	AddListener(u, a, func(n int, ctx *ListenerCtx) {
		order = append(order, "a")
		if n > 0 {
			ctx.SendEvent(b, n-1)
		}
	})
	AddListener(u, b, func(n int, ctx *ListenerCtx) {
		order = append(order, "b")
		if n > 0 {
			ctx.SendEvent(a, n-1)
		}
	})

	// a(2) and b(0) are the first round; b(1) queued by a(2) must wait for
	// the round to finish, so b(0) is delivered before it.
	u.LayoutCtx().SendEvent(a, 2)
	u.LayoutCtx().SendEvent(b, 0)
	u.DispatchEvents()

	assert.Equal(t, []string{"a", "b", "b", "a"}, order)
	assert.Equal(t, 0, u.LayoutCtx().Pending())
}

func TestDispatchTypeMismatch(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	id := u.Add(NewBox(ColorWhite))

	var ints []int
	var anys []any
	AddListener(u, id, func(n int, ctx *ListenerCtx) { ints = append(ints, n) })
	AddListener(u, id, func(v any, ctx *ListenerCtx) { anys = append(anys, v) })

	u.LayoutCtx().SendEvent(id, "text")
	u.LayoutCtx().SendEvent(id, 7)
	u.DispatchEvents()

	assert.Equal(t, []int{7}, ints)
	assert.Equal(t, []any{"text", 7}, anys, "later listeners still run after a mismatch")
	assert.Contains(t, logs.String(), "type mismatch in listener payload")
	assert.Contains(t, logs.String(), "want=int")
}

func TestDispatchNoListeners(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	id := u.Add(NewBox(ColorWhite))
	u.LayoutCtx().SendEvent(id, "dropped")
	u.DispatchEvents()
	assert.Equal(t, 0, u.LayoutCtx().Pending())
}

func TestListenerRemove(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	id := u.Add(NewBox(ColorWhite))

	var calls []string
	h1 := AddListener(u, id, func(s string, ctx *ListenerCtx) { calls = append(calls, "one") })
	var h2 ListenerHandle
	h2 = AddListener(u, id, func(s string, ctx *ListenerCtx) {
		calls = append(calls, "two")
		h2.Remove()
	})
	AddListener(u, id, func(s string, ctx *ListenerCtx) { calls = append(calls, "three") })
	assert.Equal(t, id, h1.Node())
	assert.Equal(t, 3, u.ListenerCount(id))

	u.LayoutCtx().SendEvent(id, "x")
	u.DispatchEvents()
	assert.Equal(t, []string{"one", "two", "three"}, calls, "removal does not disturb the event being delivered")
	assert.Equal(t, 2, u.ListenerCount(id))

	h1.Remove()
	h1.Remove()
	calls = nil
	u.LayoutCtx().SendEvent(id, "y")
	u.DispatchEvents()
	assert.Equal(t, []string{"three"}, calls)

	var zero ListenerHandle
	assert.NotPanics(t, zero.Remove)
}

func TestHandleCommand(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	root := u.Add(NewBox(ColorWhite))
	u.SetRoot(root)

	u.HandleCommand(3)
	assert.Contains(t, logs.String(), "command received but no handler")

	var got []uint32
	var delivered []string
	AddListener(u, root, func(s string, ctx *ListenerCtx) { delivered = append(delivered, s) })
	u.SetCommandListener(func(cmd uint32, ctx *ListenerCtx) {
		assert.Equal(t, root, ctx.ID)
		got = append(got, cmd)
		ctx.SendEvent(ctx.ID, "from command")
	})

	u.HandleCommand(9)
	assert.Equal(t, []uint32{9}, got)
	assert.Equal(t, []string{"from command"}, delivered, "events raised by the command are dispatched")

	u.SetCommandListener(nil)
	u.HandleCommand(10)
	assert.Equal(t, []uint32{9}, got)
}

func TestListenerPokesOtherNode(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	target := u.Add(NewBox(ColorWhite))
	source := u.Add(NewBox(ColorWhite))

	red := Color{R: 1, A: 1}
	AddListener(u, source, func(s string, ctx *ListenerCtx) {
		assert.True(t, ctx.Poke(target, red))
	})
	u.LayoutCtx().SendEvent(source, "go")
	u.DispatchEvents()
	assert.Equal(t, red, u.Widget(target).(*Box).Color)
}

type recordingStore struct {
	events []Event
}

func (s *recordingStore) EmitEvent(ev Event) { s.events = append(s.events, ev) }

func TestEntityStoreAfterListeners(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	id := u.Add(NewBox(ColorWhite))
	store := &recordingStore{}
	u.SetEntityStore(store)

	var seenByStore int
	AddListener(u, id, func(s string, ctx *ListenerCtx) { seenByStore = len(store.events) })

	u.LayoutCtx().SendEvent(id, "hello")
	u.DispatchEvents()

	assert.Equal(t, 0, seenByStore, "listeners run before the store")
	assert.Equal(t, []Event{{Target: id, Payload: "hello"}}, store.events)
}

// sizeReporter raises an event from layout.
type sizeReporter struct {
	BaseWidget
	id ID
}

func (s *sizeReporter) Layout(bc BoxConstraints, _ []ID, _ *Size, ctx *LayoutCtx) LayoutResult {
	ctx.SendEvent(s.id, bc.Max())
	return SizeResult(bc.Max())
}

func TestFrame(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUI(&logs)
	u.SetDebugMode(true)
	defer u.SetDebugMode(false)

	rep := &sizeReporter{}
	rep.id = u.Add(rep)
	box := u.Add(NewBox(ColorWhite))
	root := u.Add(NewColumn(), rep.id, box)
	u.SetRoot(root)

	var reported []Size
	AddListener(u, rep.id, func(s Size, ctx *ListenerCtx) { reported = append(reported, s) })

	buf := NewCommandBuffer(Size{30, 40})
	u.Frame(buf)

	assert.Equal(t, []Size{{30, 20}}, reported)
	cmds := buf.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, CommandClear, cmds[0].Type)
	assert.Equal(t, RenderCommand{Type: CommandFill, Rect: RectXYWH(0, 20, 30, 20), Color: ColorWhite}, cmds[1])
	assert.Equal(t, CommandPresent, cmds[2].Type)
	assert.Contains(t, logs.String(), "msg=frame")
}

func TestFrameEmpty(t *testing.T) {
	u := NewUI()
	buf := NewCommandBuffer(Size{10, 10})
	u.Frame(buf)
	assert.Len(t, buf.Commands(), 2)
}
