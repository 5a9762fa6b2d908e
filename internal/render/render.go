// Package render executes Go templates against a resolved palette and
// writes the output files.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/csscolors"
	"github.com/jsvensson/csscolors/internal/palette"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("render")

// Engine loads and executes Go templates against a resolved Palette.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Only         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the given palette data, and writes output files.
func (e *Engine) Run(p *palette.Palette) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := buildTemplateData(p)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			log.Debugf("skipping template %s", baseName)
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
		log.Infof("rendered %s", baseName)
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no names are specified, render all.
	if len(e.Only) == 0 {
		return true
	}

	return slices.Contains(e.Only, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Meta    palette.Meta
	Palette map[string]csscolors.Color
	Theme   map[string]csscolors.Color
	FuncMap template.FuncMap
}

func buildTemplateData(p *palette.Palette) templateData {
	return templateData{
		Meta:    p.Meta,
		Palette: p.Colors,
		Theme:   p.Theme,
		FuncMap: template.FuncMap{
			// Each renderer picks the model the target format wants,
			// converting if the color is stored in another one.
			"css": func(c csscolors.Color) string {
				return c.CSS()
			},
			"rgb": func(c csscolors.Color) string {
				return c.ToRGB().CSS()
			},
			"rgba": func(c csscolors.Color) string {
				return c.ToRGBA().CSS()
			},
			"hsl": func(c csscolors.Color) string {
				return c.ToHSL().CSS()
			},
			"hsla": func(c csscolors.Color) string {
				return c.ToHSLA().CSS()
			},
			// color resolves a dotted reference such as "palette.ocean"
			// or "theme.background".
			"color": func(ref string) (csscolors.Color, error) {
				return p.Resolve(ref)
			},
		},
	}
}
