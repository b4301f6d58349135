// Package arbor is a retained-mode UI scene graph for [Ebitengine].
//
// A UI is a tree of widgets stored in an append-only arena. Each frame the
// host lays the tree out under box constraints, paints it into a [Painter],
// and feeds it input. Widgets talk to the application by queueing events
// that listeners registered on their node receive.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and loop
// for you:
//
//	ui := arbor.NewUI()
//	a := ui.Add(arbor.NewBox(arbor.Color{R: 1, A: 1}))
//	b := ui.Add(arbor.NewBox(arbor.Color{B: 1, A: 1}))
//	row := ui.Add(arbor.NewRow(), a, b)
//	ui.SetRoot(ui.Add(arbor.UniformPadding(10), row))
//	arbor.Run(ui, arbor.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [UI.Frame]
// with an [ImagePainter] or a [CommandBuffer].
//
// # Layout
//
// Layout is a negotiation between a widget and the driver. The driver calls
// [Widget.Layout] with a nil size; the widget either answers with its final
// size ([SizeResult]) or asks for one of its children to be measured
// ([RequestChild]). The driver lays the child out and calls the widget again
// with the child's size, until the widget answers with a size. Widgets keep
// whatever they need between those calls in their own fields.
//
// Every child must be requested exactly once per pass. Requesting a node
// that is not a child, or the same child twice, panics.
//
// [Flex] (see [NewRow] and [NewColumn]) splits the maximum major extent
// equally among its children. [Padding] insets a single child. [Box] fills
// whatever it is given.
//
// # Events
//
// Handlers ([Widget.Key], [Widget.Mouse], [Widget.Poke]) queue events with
// [HandlerCtx.SendEvent]. [UI.DispatchEvents] drains the queue in rounds:
// events queued while a round is delivered wait for the next round.
// Listeners are registered per node and per payload type with [AddListener];
// a payload of another type is logged and skipped. Application commands go
// to the single listener set with [UI.SetCommandListener].
//
// Key events go to the focused node only (see [Tree.SetFocus]). Mouse
// events are routed through the tree in post-order, culled by geometry.
//
// # Misuse
//
// Structural misuse (out-of-range IDs, cycles, bad child requests) panics
// with an "arbor:" message. Listener and command misuse is logged through
// [log/slog] and the engine carries on. Constraints are never validated:
// min > max, or insets larger than the space available, produce negative
// sizes.
//
// [Ebitengine]: https://ebitengine.org
package arbor
