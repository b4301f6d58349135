package arbor

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// globalDebug mirrors the most recently set UI debug flag so that widgets
// and graph operations (which lack a UI pointer) can check it cheaply. Only
// valid with a single UI; multiple UIs with differing debug modes reflect
// whichever called SetDebugMode last.
var globalDebug bool

// debugLog is the logger of the UI that last enabled debug mode.
var debugLog *slog.Logger

func debugLogger() *slog.Logger {
	if debugLog != nil {
		return debugLog
	}
	return slog.Default()
}

// debugStats holds per-frame timings. Only populated when UI.debug is true.
type debugStats struct {
	layoutTime   time.Duration
	dispatchTime time.Duration
	paintTime    time.Duration
	nodeCount    int
}

func (u *UI) debugLogStats(stats debugStats) {
	if !u.debug {
		return
	}
	u.logger.Debug("frame",
		"layout", stats.layoutTime,
		"dispatch", stats.dispatchTime,
		"paint", stats.paintTime,
		"total", stats.layoutTime+stats.dispatchTime+stats.paintTime,
		"nodes", stats.nodeCount)
}

// debugMaxTreeDepth is the depth above which a warning is logged.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(t *Tree, id ID) {
	if depth := t.graph.Depth(id); depth > debugMaxTreeDepth {
		debugLogger().Warn("tree depth exceeds threshold",
			"node", int(id), "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(t *Tree, id ID) {
	if n := len(t.graph.children[id]); n > debugMaxChildCount {
		debugLogger().Warn("node has too many children",
			"node", int(id), "children", n, "threshold", debugMaxChildCount)
	}
}

// WidgetKind returns a short name for the kind of w.
func WidgetKind(w Widget) string {
	switch w := w.(type) {
	case *Flex:
		if w.Axis == Vertical {
			return "column"
		}
		return "row"
	case *Padding:
		return "padding"
	case *Box:
		return "box"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", w), "*")
}

// Dump writes one line per node reachable from root: its ID, kind, relative
// origin and size, indented by depth.
func (t *Tree) Dump(w io.Writer, root ID) error {
	var err error
	var walk func(id ID, depth int)
	walk = func(id ID, depth int) {
		if err != nil {
			return
		}
		g := t.ctx.geom[id]
		_, err = fmt.Fprintf(w, "%s#%d %s origin=(%g,%g) size=(%g,%g)\n",
			strings.Repeat("  ", depth), id, WidgetKind(t.widgets[id]),
			g.Origin.X, g.Origin.Y, g.Size.Width, g.Size.Height)
		for _, child := range t.graph.children[id] {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return err
}
