package main

import (
	"fmt"

	"github.com/phanxgames/arbor"
	"github.com/phanxgames/arbor/layoutfile"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

// scene is a layout description built into a fresh UI.
type scene struct {
	doc   *layoutfile.Document
	ui    *arbor.UI
	built *layoutfile.Built
}

func loadScene(path string, opts *rootOptions) (*scene, error) {
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	u := arbor.NewUI()
	u.SetLogger(opts.logger())
	u.SetDebugMode(opts.debug)
	built, err := doc.Build(u)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	return &scene{doc: doc, ui: u, built: built}, nil
}

// size picks the surface size: flags first, then the document, then the
// defaults.
func (s *scene) size(width, height int) arbor.Size {
	if width <= 0 {
		width = s.doc.Width
	}
	if height <= 0 {
		height = s.doc.Height
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return arbor.Size{Width: arbor.Coord(width), Height: arbor.Coord(height)}
}

// name returns the description name of id, or its kind.
func (s *scene) name(id arbor.ID) string {
	for name, nid := range s.built.Names {
		if nid == id {
			return name
		}
	}
	return s.built.Kinds[id]
}
