// Command bobdiagram is the CLI collaborator: it reads an
// ASCII/Unicode box-drawing diagram from stdin or a file, renders it to
// SVG via the bobdiagram package, and writes the result to stdout or a
// file. A "build" subcommand batches a glob of "*.bob" files into an
// output directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/asciigeom/bobdiagram"
)

const version = "0.1.0"

const (
	exitOK          = 0
	exitInputError  = 1
	exitOutputError = 2
)

func main() {
	var stdin io.Reader
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		stdin = os.Stdin
	}
	code := run(os.Args, stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 1 && args[1] == "build" {
		return runBuild(args[2:], stderr, stdout)
	}

	fs := pflag.NewFlagSet("bobdiagram", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	inputFile := fs.StringP("input", "i", "", "read the diagram from this file instead of stdin")
	outputFile := fs.StringP("output", "o", "", "write the SVG to this file instead of stdout")
	showVersion := fs.BoolP("version", "v", false, "print the version and exit")
	copyToClipboard := fs.Bool("copy", false, "copy the rendered SVG to the clipboard via OSC52")

	fontSize := fs.Int("font-size", 14, "font size in pixels")
	fontFamily := fs.String("font-family", "monospace", "font family")
	fillColor := fs.String("fill-color", "none", "default shape fill color")
	background := fs.String("background", "white", "backdrop color (see --include-backdrop)")
	strokeColor := fs.String("stroke-color", "black", "stroke color for lines and shapes")
	strokeWidth := fs.Float64("stroke-width", 2.0, "stroke width")
	scale := fs.Float64("scale", 8.0, "pixels per lattice unit")
	noEnhance := fs.Bool("no-enhance-circuitries", false, "disable near-miss endpoint nudging before merge")
	includeBackdrop := fs.Bool("include-backdrop", false, "draw a full-canvas background rect")
	includeStyles := fs.Bool("include-styles", false, "also embed a <style> block (inline attributes are kept)")
	svgClass := fs.String("svg-class", "bob", "CSS class on the root <svg> element")
	svgID := fs.String("svg-id", "", "id attribute on the root <svg> element")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "bobdiagram - render ASCII/Unicode box-drawing diagrams as SVG\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  bobdiagram [flags]\n")
		fmt.Fprintf(stderr, "  bobdiagram build --input <glob> --outdir <dir>\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitInputError
	}

	if *showVersion {
		fmt.Fprintf(stdout, "bobdiagram version %s\n", version)
		return exitOK
	}

	diagram, err := readInput(*inputFile, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInputError
	}

	settings := bobdiagram.DefaultSettings()
	settings.FontSize = *fontSize
	settings.FontFamily = *fontFamily
	settings.FillColor = *fillColor
	settings.Background = *background
	settings.StrokeColor = *strokeColor
	settings.StrokeWidth = *strokeWidth
	settings.Scale = *scale
	settings.EnhanceCircuitries = !*noEnhance
	settings.IncludeBackdrop = *includeBackdrop
	settings.IncludeStyles = *includeStyles
	settings.SVGClass = *svgClass
	settings.SVGID = *svgID

	if err := settings.ValidateColors(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInputError
	}

	svg := bobdiagram.ToSVGWithSettings(diagram, settings)

	if err := writeOutput(*outputFile, svg, stdout); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return exitOutputError
	}

	if *copyToClipboard {
		copyClipboard(svg, stdout, stderr)
	}

	return exitOK
}

func readInput(inputFile string, stdin io.Reader) (string, error) {
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", inputFile, err)
		}
		return string(data), nil
	}
	if stdin == nil {
		return "", fmt.Errorf("no --input given and stdin is not piped")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func writeOutput(outputFile, svg string, stdout io.Writer) error {
	if outputFile == "" {
		_, err := io.WriteString(stdout, svg)
		return err
	}
	return os.WriteFile(outputFile, []byte(svg), 0o644)
}

// copyClipboard emits svg to the terminal over an OSC52 escape sequence,
// the only portable way to reach the system clipboard through an SSH
// session without a local helper binary. It degrades silently (a status
// note to stderr, colored when the terminal supports it) rather than
// failing the whole run, since clipboard copy is a convenience, not the
// command's primary output contract. When stdout is not a terminal the
// escape sequence is not written and only the note is printed.
func copyClipboard(svg string, stdout, stderr io.Writer) {
	if f, ok := stdout.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(stderr, "stdout is not a terminal; clipboard copy skipped")
		return
	}
	profile := termenv.EnvColorProfile()
	note := "copied to clipboard"
	if profile != termenv.Ascii {
		note = termenv.String(note).Foreground(profile.Color("2")).String()
	}
	osc52.New(svg).WriteTo(stdout)
	fmt.Fprintln(stderr, note)
}

func runBuild(args []string, stderr, stdout io.Writer) int {
	fs := pflag.NewFlagSet("bobdiagram build", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	pattern := fs.StringP("input", "i", "", "glob pattern of .bob files to convert (required)")
	outDir := fs.String("outdir", ".", "directory to write the converted .svg files into")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "bobdiagram build - convert a glob of diagram files to SVG\n\n")
		fmt.Fprintf(stderr, "Usage:\n  bobdiagram build --input '*.bob' --outdir svg/\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitInputError
	}
	if *pattern == "" {
		fmt.Fprintln(stderr, "Error: --input glob is required")
		return exitInputError
	}

	matches, err := filepath.Glob(*pattern)
	if err != nil {
		fmt.Fprintf(stderr, "Error: bad glob pattern: %v\n", err)
		return exitInputError
	}
	if len(matches) == 0 {
		fmt.Fprintf(stderr, "Error: no files matched %q\n", *pattern)
		return exitInputError
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(stderr, "Error: creating %s: %v\n", *outDir, err)
		return exitOutputError
	}

	settings := bobdiagram.DefaultSettings()
	for _, src := range matches {
		data, err := os.ReadFile(src)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", src, err)
			return exitInputError
		}
		svg := bobdiagram.ToSVGWithSettings(string(data), settings)

		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dst := filepath.Join(*outDir, base+".svg")
		if err := os.WriteFile(dst, []byte(svg), 0o644); err != nil {
			fmt.Fprintf(stderr, "Error writing %s: %v\n", dst, err)
			return exitOutputError
		}
		fmt.Fprintf(stdout, "%s -> %s\n", src, dst)
	}
	return exitOK
}
