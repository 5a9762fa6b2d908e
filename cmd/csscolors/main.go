package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/csscolors/internal/format"
	"github.com/jsvensson/csscolors/internal/palette"
	"github.com/jsvensson/csscolors/internal/render"
)

var (
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagOnly      []string
	flagCheck     bool
	flagVerbose   int
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "csscolors",
	Short:   "Derive and render CSS color schemes from a single HCL palette file",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render output files from templates",
	RunE:  runRender,
}

var showCmd = &cobra.Command{
	Use:   "show [references...]",
	Short: "Print resolved colors in their CSS form",
	Long: "Print resolved palette and theme colors as CSS. With no arguments every " +
		"entry is printed; otherwise only the given references (e.g. palette.ocean).",
	RunE: runShow,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format palette files",
	Long:  "Format one or more palette files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
	renderCmd.Flags().StringVar(&flagPalette, "palette", "palette.hcl", "path to palette HCL file")
	renderCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	renderCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	renderCmd.Flags().StringArrayVar(&flagOnly, "only", nil, "render only specific templates (can be repeated)")
	showCmd.Flags().StringVar(&flagPalette, "palette", "palette.hcl", "path to palette HCL file")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(flagPalette)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	e := &render.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Only:         flagOnly,
	}

	if err := e.Run(p); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered output files in %s\n", flagOut)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(flagPalette)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, ref := range args {
			c, err := p.Resolve(ref)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-24s %s\n", ref, c.CSS())
		}
		return nil
	}

	for _, name := range p.ColorNames() {
		fmt.Fprintf(out, "%-24s %s\n", "palette."+name, p.Colors[name].CSS())
	}
	for _, name := range p.ThemeNames() {
		fmt.Fprintf(out, "%-24s %s\n", "theme."+name, p.Theme[name].CSS())
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if format.Check(src) {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, format.Source(src), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
