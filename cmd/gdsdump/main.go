package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/gds-stream/gdsii"
)

var (
	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	tagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type options struct {
	filter map[gdsii.Tag]bool
	limit  int
	stats  bool
	color  bool
}

func main() {
	var (
		file        = flag.String("file", "", "Path to GDSII stream file")
		configPath  = flag.String("config", "", "TOML file with default filter, color, limit and stats")
		tags        = flag.Bool("tags", false, "List the record registry and exit")
		stats       = flag.Bool("stats", false, "Print record counts per tag after the dump")
		filter      = flag.String("filter", "", "Only show these records (NAME,NAME2)")
		limit       = flag.Int("limit", 0, "Stop after this many records (0 = all)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
		color       = flag.String("color", "auto", "Colorize output: auto, always, never")
	)
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	gdsii.SetLogger(log)

	if *tags {
		listTags(os.Stdout)
		return
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: gdsdump -file <lib.gds> [-filter NAME,...] [-limit N] [-stats] [-color auto|always|never]")
		fmt.Fprintln(os.Stderr, "       gdsdump -file <lib.gds> -config gdsdump.toml")
		fmt.Fprintln(os.Stderr, "       gdsdump -tags")
		fmt.Fprintln(os.Stderr, "       gdsdump -file <lib.gds> -i  (interactive mode)")
		os.Exit(1)
	}

	cfg := defaultDumpConfig()
	if *configPath != "" {
		if cfg, err = loadDumpConfig(*configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Debug("loaded config", zap.String("path", *configPath))
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "filter":
			cfg.Filter = strings.Split(*filter, ",")
		case "color":
			cfg.Color = *color
		case "limit":
			cfg.Limit = *limit
		case "stats":
			cfg.Stats = *stats
		}
	})

	if err := checkColorMode(cfg.Color); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	want, err := parseFilter(strings.Join(cfg.Filter, ","))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*file, strings.Join(cfg.Filter, ","), cfg.Limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.Debug("dumping stream", zap.String("file", *file), zap.Int("limit", cfg.Limit))

	opts := options{
		filter: want,
		limit:  cfg.Limit,
		stats:  cfg.Stats,
		color:  useColor(cfg.Color, os.Stdout),
	}
	out := bufio.NewWriter(os.Stdout)
	err = run(out, bufio.NewReader(f), opts)
	out.Flush()
	if err != nil {
		log.Sync()
		os.Exit(1)
	}
}

// newLogger returns a development logger for -v and a production logger,
// which reports only warnings and errors from the codec, otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// useColor resolves the -color mode against the output stream.
func useColor(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(out.Fd()))
	}
}

func newDecoder(r io.Reader, limit int) *gdsii.Decoder {
	opts := gdsii.DefaultDecoderOptions()
	opts.MaxRecords = limit
	return gdsii.NewDecoderWithOptions(r, opts)
}

func parseFilter(s string) (map[gdsii.Tag]bool, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	want := make(map[gdsii.Tag]bool)
	for _, name := range strings.Split(s, ",") {
		e, err := gdsii.LookupName(name)
		if err != nil {
			return nil, err
		}
		want[e.Tag] = true
	}
	return want, nil
}

// run dumps the stream from r to out. The stream error is printed after the
// records decoded before it, and returned.
func run(out io.Writer, r io.Reader, opts options) error {
	counts := make(map[gdsii.Tag]int)
	dw := &lineWriter{out: out, opts: opts, counts: counts}
	err := gdsii.DumpDecoder(dw, newDecoder(r, opts.limit))
	if opts.stats {
		writeStats(out, counts)
	}
	return err
}

// lineWriter prints one "offset TAG kind value" line per record.
type lineWriter struct {
	out    io.Writer
	counts map[gdsii.Tag]int
	opts   options
}

func (w *lineWriter) WriteRecord(offset int64, rec gdsii.Record) {
	w.counts[rec.Tag]++
	if w.opts.filter != nil && !w.opts.filter[rec.Tag] {
		return
	}
	off := fmt.Sprintf("%08X", offset)
	tag := fmt.Sprintf("%-14s", rec.Tag)
	kind := fmt.Sprintf("%-8s", rec.Kind())
	if w.opts.color {
		off = offsetStyle.Render(off)
		tag = tagStyle.Render(tag)
		kind = kindStyle.Render(kind)
	}
	fmt.Fprintf(w.out, "%s  %s %s %s\n", off, tag, kind, gdsii.FormatValue(rec.Value))
}

func (w *lineWriter) WriteStatus(err error) {
	if err == nil {
		return
	}
	msg := fmt.Sprintf("Error: %v", err)
	if w.opts.color {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(w.out, msg)
}

func writeStats(out io.Writer, counts map[gdsii.Tag]int) {
	tags := make([]gdsii.Tag, 0, len(counts))
	total := 0
	for tag, n := range counts {
		tags = append(tags, tag)
		total += n
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	fmt.Fprintf(out, "\nRecords: %d\n", total)
	for _, tag := range tags {
		fmt.Fprintf(out, "  %-14s %d\n", tag, counts[tag])
	}
}

func listTags(out io.Writer) {
	for _, e := range gdsii.Entries() {
		size := "-"
		if e.ExpectedSize > 0 {
			size = fmt.Sprint(e.ExpectedSize)
		}
		var flags []string
		if e.Unused {
			flags = append(flags, "unused")
		}
		if e.Uncertain {
			flags = append(flags, "uncertain")
		}
		fmt.Fprintf(out, "0x%04X  %-14s %-8s %4s  %s\n",
			uint16(e.Tag), e.Name, e.Kind, size, strings.Join(flags, ","))
	}
}
