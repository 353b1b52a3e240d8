package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dusk-indust/outline/internal/config"
	"github.com/dusk-indust/outline/internal/export"
	"github.com/dusk-indust/outline/internal/extract"
	"github.com/dusk-indust/outline/internal/mcptools"
	"github.com/dusk-indust/outline/internal/walker"
)

// CLI flags parsed from command line.
type cliFlags struct {
	MinLines    int
	Concurrency int
	Ignore      string
	MaxFiles    int
	JSON        bool
	Verbose     bool
	ServeMCP    bool
	Listen      string
	Version     bool
}

// version is set by the linker at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("outline", flag.ContinueOnError)
	fs.IntVar(&flags.MinLines, "min-lines", 0, "minimum definition size in lines (default 4)")
	fs.IntVar(&flags.Concurrency, "concurrency", 0, "batch worker count (default: number of CPUs)")
	fs.StringVar(&flags.Ignore, "ignore", "", "comma-separated ignore glob patterns")
	fs.IntVar(&flags.MaxFiles, "max-files", 0, "cap on files walked per directory (0 = unbounded)")
	fs.BoolVar(&flags.JSON, "json", false, "emit JSON instead of the text outline")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log grammar loading and extraction progress")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server instead of extracting")
	fs.StringVar(&flags.Listen, "listen", "localhost:9200", "listen address for -serve-mcp")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := extract.NewRegistry()

	if flags.ServeMCP {
		svc := mcptools.NewOutlineService(registry, nil)
		return mcptools.RunMCPServer(ctx, svc, flags.Listen)
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: outline [flags] <file-or-directory>")
	}
	target := fs.Arg(0)

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading outline.yml: %w", err)
	}
	applyFlagOverrides(cfg, flags)

	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}

	w, err := walker.New(cfg.IgnoreGlobs)
	if err != nil {
		return err
	}
	w.MaxFiles = cfg.MaxFiles

	coord := extract.NewCoordinator(registry, extract.CoordinatorConfig{
		MinLines: cfg.MinLines,
		Workers:  cfg.Concurrency,
		Gate:     newLanguageGate(cfg.Languages),
		Lister:   w,
	})

	if info.IsDir() {
		outcomes, err := coord.ExtractDirectory(ctx, target)
		if err != nil {
			return err
		}
		if flags.JSON {
			data, err := export.MarshalBatch(target, outcomes)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		fmt.Print(export.FormatBatch(outcomes))
		return nil
	}

	out := coord.ExtractFile(ctx, target)
	switch out.Kind {
	case extract.OutcomeOK:
		if flags.JSON {
			data, err := export.MarshalBatch("", map[string]extract.Outcome{target: out})
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		fmt.Print(export.FormatFile(out.Result))
		return nil
	case extract.OutcomeSkipped:
		return nil
	default:
		return fmt.Errorf("%s: %s", out.Kind, out.Err)
	}
}

// languageGate vetoes files whose language is not in the configured set.
type languageGate struct {
	allowed map[extract.Language]bool
}

var _ extract.AccessGate = languageGate{}

// newLanguageGate returns nil (no gate) when the language list is empty.
func newLanguageGate(names []string) extract.AccessGate {
	if len(names) == 0 {
		return nil
	}
	allowed := make(map[extract.Language]bool, len(names))
	for _, n := range names {
		allowed[extract.Language(n)] = true
	}
	return languageGate{allowed: allowed}
}

func (g languageGate) Allow(path string) bool {
	lang, ok := extract.LanguageForPath(path)
	return ok && g.allowed[lang]
}

// applyFlagOverrides lets explicit flags win over the config file.
func applyFlagOverrides(cfg *config.ProjectConfig, flags cliFlags) {
	if flags.MinLines > 0 {
		cfg.MinLines = flags.MinLines
	}
	if flags.Concurrency > 0 {
		cfg.Concurrency = flags.Concurrency
	}
	if flags.MaxFiles > 0 {
		cfg.MaxFiles = flags.MaxFiles
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
	if flags.Ignore != "" {
		for _, p := range strings.Split(flags.Ignore, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.IgnoreGlobs = append(cfg.IgnoreGlobs, p)
			}
		}
	}
}
