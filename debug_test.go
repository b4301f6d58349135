package arbor

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func debugUI(t *testing.T) (*UI, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	u := NewUI()
	u.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	u.SetDebugMode(true)
	t.Cleanup(func() { u.SetDebugMode(false) })
	return u, &buf
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	u, logs := debugUI(t)

	// Build a chain deeper than debugMaxTreeDepth (32).
	current := u.Add(&Padding{})
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := u.Add(&Padding{})
		u.AppendChild(current, child)
		current = child
	}

	if !strings.Contains(logs.String(), "tree depth exceeds threshold") {
		t.Errorf("expected tree depth warning, got: %q", logs.String())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	u, logs := debugUI(t)

	children := make([]ID, debugMaxChildCount+1)
	for i := range children {
		children[i] = u.Add(NewBox(ColorWhite))
	}
	u.Add(NewRow(), children...)

	output := logs.String()
	if !strings.Contains(output, "node has too many children") {
		t.Errorf("expected child count warning, got: %q", output)
	}
}

func TestReleaseMode_NoWarnings(t *testing.T) {
	var buf bytes.Buffer
	u := NewUI()
	u.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	children := make([]ID, debugMaxChildCount+1)
	for i := range children {
		children[i] = u.Add(NewBox(ColorWhite))
	}
	u.Add(NewRow(), children...)
	u.Layout(Loose(Size{10, 10}), u.Add(UniformPadding(20), u.Add(NewBox(ColorWhite))))

	if buf.Len() != 0 {
		t.Errorf("expected no output outside debug mode, got: %q", buf.String())
	}
}

func TestWidgetKind(t *testing.T) {
	tests := []struct {
		w    Widget
		want string
	}{
		{NewRow(), "row"},
		{NewColumn(), "column"},
		{UniformPadding(1), "padding"},
		{NewBox(ColorWhite), "box"},
		{&probe{}, "arbor.probe"},
	}
	for _, tt := range tests {
		if got := WidgetKind(tt.w); got != tt.want {
			t.Errorf("WidgetKind(%T) = %q, want %q", tt.w, got, tt.want)
		}
	}
}

func TestDump(t *testing.T) {
	u, pad, _, _, _ := buildPaddedRow(t)

	var buf bytes.Buffer
	if err := u.Dump(&buf, pad); err != nil {
		t.Fatal(err)
	}
	want := "#3 padding origin=(0,0) size=(120,60)\n" +
		"  #2 row origin=(10,10) size=(100,40)\n" +
		"    #0 box origin=(0,0) size=(50,40)\n" +
		"    #1 box origin=(50,0) size=(50,40)\n"
	if buf.String() != want {
		t.Errorf("Dump =\n%s\nwant\n%s", buf.String(), want)
	}
}
