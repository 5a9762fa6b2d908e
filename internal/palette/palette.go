// Package palette loads HCL palette files. A palette file declares
// named colors built from the csscolors constructors and derives theme
// entries from them with the transformation functions, so every color
// stays a real color value from declaration to rendering.
package palette

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/csscolors"
	"github.com/zclconf/go-cty/cty"
)

// Palette is a fully-resolved palette file, ready for template
// rendering.
type Palette struct {
	Meta   Meta
	Colors map[string]csscolors.Color
	Theme  map[string]csscolors.Color
}

// Meta holds palette metadata.
type Meta struct {
	Name    string
	Author  string
	Version string
}

// Load parses an HCL palette file and returns the resolved Palette.
func Load(path string) (*Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return Parse(src, path)
}

// Parse parses palette file source. The filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Palette, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body := file.Body.(*hclsyntax.Body)

	p := &Palette{
		Colors: make(map[string]csscolors.Color),
		Theme:  make(map[string]csscolors.Color),
	}

	if err := parseMeta(body, p); err != nil {
		return nil, err
	}

	// Palette block first: it only uses the color functions, and the
	// theme block references its entries.
	ctx := &hcl.EvalContext{Functions: colorFunctions()}
	if err := parseColorBlock(body, "palette", ctx, p.Colors); err != nil {
		return nil, err
	}

	ctx = buildEvalContext(p.Colors)
	if err := parseColorBlock(body, "theme", ctx, p.Theme); err != nil {
		return nil, err
	}

	return p, nil
}

// ColorNames returns the palette color names in sorted order.
func (p *Palette) ColorNames() []string {
	return sortedKeys(p.Colors)
}

// ThemeNames returns the theme entry names in sorted order.
func (p *Palette) ThemeNames() []string {
	return sortedKeys(p.Theme)
}

// Resolve looks up a dotted reference such as "palette.ocean" or
// "theme.background".
func (p *Palette) Resolve(ref string) (csscolors.Color, error) {
	section, name, ok := splitRef(ref)
	if !ok {
		return nil, fmt.Errorf("invalid color reference %q: want section.name", ref)
	}

	var src map[string]csscolors.Color
	switch section {
	case "palette":
		src = p.Colors
	case "theme":
		src = p.Theme
	default:
		return nil, fmt.Errorf("unknown section %q in reference %q", section, ref)
	}

	c, ok := src[name]
	if !ok {
		return nil, fmt.Errorf("no color named %q in %s", name, section)
	}
	return c, nil
}

func splitRef(ref string) (section, name string, ok bool) {
	for i := 0; i < len(ref); i++ {
		if ref[i] == '.' {
			return ref[:i], ref[i+1:], i > 0 && i < len(ref)-1
		}
	}
	return "", "", false
}

func parseMeta(body *hclsyntax.Body, p *Palette) error {
	for _, block := range body.Blocks {
		if block.Type != "meta" {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("parsing meta: %s", diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return fmt.Errorf("evaluating meta.%s: %s", name, diags.Error())
			}
			switch name {
			case "name":
				p.Meta.Name = val.AsString()
			case "author":
				p.Meta.Author = val.AsString()
			case "version":
				p.Meta.Version = val.AsString()
			default:
				return fmt.Errorf("unknown meta attribute %q (valid: name, author, version)", name)
			}
		}
		return nil
	}
	return nil
}

// parseColorBlock parses a flat block whose attributes all evaluate to
// color values.
func parseColorBlock(body *hclsyntax.Body, blockType string, ctx *hcl.EvalContext, dest map[string]csscolors.Color) error {
	for _, block := range body.Blocks {
		if block.Type != blockType {
			continue
		}
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("parsing %s: %s", blockType, diags.Error())
		}
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(ctx)
			if diags.HasErrors() {
				return fmt.Errorf("evaluating %s.%s: %s", blockType, name, diags.Error())
			}
			c, err := colorFromVal(val)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", blockType, name, err)
			}
			dest[name] = c
		}
		return nil
	}
	if blockType == "palette" {
		return fmt.Errorf("no palette block found")
	}
	return nil
}

func buildEvalContext(palette map[string]csscolors.Color) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(palette))
	for _, k := range sortedKeys(palette) {
		vals[k] = colorVal(palette[k])
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(vals),
		},
		Functions: colorFunctions(),
	}
}

func sortedKeys(m map[string]csscolors.Color) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
