// Package layoutfile builds arbor trees from declarative TOML or YAML
// descriptions.
//
// A description nests nodes under a root:
//
//	title = "demo"
//	width = 320
//	height = 200
//	background = "#202028"
//
//	[root]
//	kind = "padding"
//	inset = 10.0
//
//	  [[root.children]]
//	  kind = "row"
//
//	    [[root.children.children]]
//	    kind = "box"
//	    name = "left"
//	    color = "steelblue"
//	    interactive = true
//
// Kinds are "row", "column", "padding" (exactly one child) and "box" (no
// children). Colors are CSS/SVG color names or #rgb / #rrggbb hex values.
// In TOML, insets are floats and must be written with a decimal point.
package layoutfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/arbor"
)

// Format selects the syntax of a description.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("layoutfile: unknown extension %q", filepath.Ext(path))
}

// Document is a whole description: window settings and the root node.
type Document struct {
	Title      string `toml:"title" yaml:"title"`
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Background string `toml:"background" yaml:"background"`
	// Focus names the node focused after Build, if any.
	Focus string `toml:"focus" yaml:"focus"`
	Root  Node   `toml:"root" yaml:"root"`
}

// Node describes one widget and its children.
type Node struct {
	Kind        string `toml:"kind" yaml:"kind"`
	Name        string `toml:"name" yaml:"name"`
	Color       string `toml:"color" yaml:"color"`
	Interactive bool   `toml:"interactive" yaml:"interactive"`

	// Inset, when set, applies to every edge a per-edge value leaves at 0.
	Inset  *float32 `toml:"inset" yaml:"inset"`
	Left   float32  `toml:"left" yaml:"left"`
	Right  float32  `toml:"right" yaml:"right"`
	Top    float32  `toml:"top" yaml:"top"`
	Bottom float32  `toml:"bottom" yaml:"bottom"`

	Children []Node `toml:"children" yaml:"children"`
}

// Parse decodes a description. Unknown keys are an error.
func Parse(data []byte, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("layoutfile: parse yaml: %w", err)
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("layoutfile: parse toml: %w", err)
		}
	}
	if doc.Root.Kind == "" {
		return nil, fmt.Errorf("layoutfile: missing root node")
	}
	return &doc, nil
}

// Load reads and parses the description at path, picking the format from
// its extension.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layoutfile: %w", err)
	}
	return Parse(data, f)
}

// ParseColor resolves a color name or a #rgb / #rrggbb hex value.
func ParseColor(s string) (arbor.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return arbor.ColorWhite, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return arbor.Color{}, fmt.Errorf("layoutfile: color %q: %w", s, err)
		}
		return arbor.Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return arbor.Color{}, fmt.Errorf("layoutfile: unknown color %q", s)
	}
	return arbor.ColorFromStd(named), nil
}

// Built is the result of Build.
type Built struct {
	Root arbor.ID
	// Names maps every named node to its ID.
	Names map[string]arbor.ID
	// Kinds maps every built node to its description kind.
	Kinds map[arbor.ID]string
}

// Build adds the document's nodes to u, sets the root, and focuses the
// node named by Focus. On error the nodes built so far stay in u.
func (d *Document) Build(u *arbor.UI) (*Built, error) {
	b := &Built{Names: make(map[string]arbor.ID), Kinds: make(map[arbor.ID]string)}
	root, err := buildNode(u, &d.Root, "root", b)
	if err != nil {
		return nil, err
	}
	b.Root = root
	u.SetRoot(root)
	if d.Focus != "" {
		id, ok := b.Names[d.Focus]
		if !ok {
			return nil, fmt.Errorf("layoutfile: focus: no node named %q", d.Focus)
		}
		u.SetFocus(id)
	}
	return b, nil
}

// BackgroundColor resolves the document background. Empty means transparent.
func (d *Document) BackgroundColor() (arbor.Color, error) {
	if d.Background == "" {
		return arbor.Color{}, nil
	}
	return ParseColor(d.Background)
}

func buildNode(u *arbor.UI, n *Node, path string, b *Built) (arbor.ID, error) {
	children := make([]arbor.ID, 0, len(n.Children))
	for i := range n.Children {
		id, err := buildNode(u, &n.Children[i], fmt.Sprintf("%s.children[%d]", path, i), b)
		if err != nil {
			return arbor.NoID, err
		}
		children = append(children, id)
	}

	var w arbor.Widget
	kind := strings.ToLower(n.Kind)
	switch kind {
	case "row":
		w = arbor.NewRow()
	case "column":
		w = arbor.NewColumn()
	case "padding":
		if len(children) != 1 {
			return arbor.NoID, fmt.Errorf("layoutfile: %s: padding needs exactly one child, has %d", path, len(children))
		}
		w = n.padding()
	case "box":
		if len(children) != 0 {
			return arbor.NoID, fmt.Errorf("layoutfile: %s: box cannot have children", path)
		}
		c, err := ParseColor(n.Color)
		if err != nil {
			return arbor.NoID, fmt.Errorf("%w (at %s)", err, path)
		}
		box := arbor.NewBox(c)
		box.Interactive = n.Interactive
		w = box
	default:
		return arbor.NoID, fmt.Errorf("layoutfile: %s: unknown kind %q", path, n.Kind)
	}

	id := u.Add(w, children...)
	b.Kinds[id] = kind
	if n.Name != "" {
		if _, dup := b.Names[n.Name]; dup {
			return arbor.NoID, fmt.Errorf("layoutfile: %s: duplicate name %q", path, n.Name)
		}
		b.Names[n.Name] = id
	}
	return id, nil
}

func (n *Node) padding() *arbor.Padding {
	p := &arbor.Padding{Left: n.Left, Right: n.Right, Top: n.Top, Bottom: n.Bottom}
	if n.Inset != nil {
		for _, edge := range []*arbor.Coord{&p.Left, &p.Right, &p.Top, &p.Bottom} {
			if *edge == 0 {
				*edge = *n.Inset
			}
		}
	}
	return p
}
