package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/osuushi/convexify/advanced"
	"github.com/osuushi/convexify/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Decompose polygons into convex regions and report on them. Input is either
// newline separated points in the form "x y", with polygons separated by an
// extra newline, or an SVG file containing a single <polygon>.
//
// Polygons should be simple. Either winding is accepted. Each polygon is
// decomposed on its own; holes are not supported.
var (
	app        = kingpin.New("convexify", "Split simple polygons into convex regions.")
	inputPath  = app.Arg("input", "Input file (text points or SVG). Reads stdin when omitted.").String()
	format     = app.Flag("format", "Input format.").Default("auto").Enum("auto", "text", "svg")
	configPath = app.Flag("config", "YAML config file.").Short('c').String()
	pngPath    = app.Flag("png", "Write a rendering of the regions to this PNG file.").Short('o').String()
	preview    = app.Flag("preview", "Print a rendering inline in the terminal (iTerm only).").Bool()
	labels     = app.Flag("labels", "Label regions in renderings.").Bool()
	scale      = app.Flag("scale", "Pixels per input unit in renderings.").Float64()
	logLevel   = app.Flag("log-level", "Log level: debug, info, warn or error.").String()
	dump       = app.Flag("dump", "Dump the regions in full.").Bool()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
)

func main() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "convexify: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *scale > 0 {
		cfg.Render.Scale = *scale
	}
	if *labels {
		cfg.Render.Labels = true
	}

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	in := io.Reader(os.Stdin)
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	polygons, err := readInput(in, *format)
	if err != nil {
		return err
	}
	if len(polygons) == 0 {
		return errors.New("no polygons in input")
	}

	results := decompose(polygons, cfg.partitionerOptions(logger))
	report(out, results, !*noColor)

	if *dump {
		for _, result := range results {
			fmt.Fprintln(out, pretty.Sprint(result.Regions))
		}
	}

	if *pngPath == "" && !*preview {
		return nil
	}
	var all advanced.RegionList
	var outline advanced.Region
	for _, result := range results {
		all = append(all, result.Regions...)
	}
	if len(results) == 1 {
		outline = results[0].Polygon
	}
	if *pngPath != "" {
		if err := render.SavePNG(*pngPath, all, outline, cfg.Render); err != nil {
			return err
		}
	}
	if *preview {
		if err := render.Preview(out, all, outline, cfg.Render); err != nil {
			return err
		}
	}
	return nil
}
