// Package main is a host harness for the mark-mark modal editing engine.
//
// It loads a text file, feeds a key sequence to the engine and prints every
// resulting action as a JSON line. With -i it runs the engine interactively
// in the terminal instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/floatingskies/mark-mark/internal/config"
	"github.com/floatingskies/mark-mark/internal/engine/textobj"
	"github.com/floatingskies/mark-mark/internal/engine/textobj/luaobj"
	"github.com/floatingskies/mark-mark/internal/input"
	"github.com/floatingskies/mark-mark/internal/input/key"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ConfigPath  string
	FilePath    string
	Keys        string
	LuaPath     string
	LuaName     string
	LuaFunc     string
	LogLevel    string
	Stats       bool
	Pretty      bool
	Interactive bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger, err := newLogger(os.Stderr, opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	resolver := textobj.NewResolver()
	if opts.LuaPath != "" {
		src, err := os.ReadFile(opts.LuaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		obj, err := luaobj.Register(resolver, opts.LuaName, string(src), opts.LuaFunc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: lua text object %q: %v\n", opts.LuaName, err)
			return 1
		}
		defer obj.Close()
		logger.Debug("lua text object registered", "name", opts.LuaName, "func", opts.LuaFunc)
	}

	text := ""
	if opts.FilePath != "" {
		data, err := os.ReadFile(opts.FilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	engine := input.New(
		input.WithConfig(cfg),
		input.WithLogger(logger),
		input.WithResolver(resolver),
	)
	h := newHost(engine, opts.FilePath, text)

	if opts.Interactive {
		err = runTerminal(h)
	} else {
		err = replay(h, opts.Keys, opts.Pretty, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Stats {
		printStats(os.Stderr, engine.Metrics().Snapshot())
	}
	return 0
}

// replay feeds keys through the host and writes one JSON line per action.
func replay(h *host, keys string, pretty bool, w io.Writer) error {
	if keys == "" {
		return errors.New("no keys given (use -keys or -i)")
	}
	events, err := key.ParseSequence(keys)
	if err != nil {
		return fmt.Errorf("parse keys: %w", err)
	}
	for _, ev := range events {
		a := h.engine.HandleKey(ev)
		if a == nil {
			continue
		}
		doc := a.JSON()
		if pretty {
			doc = strings.TrimSpace(gjson.Get(doc, "@pretty").Raw)
		}
		if _, err := fmt.Fprintln(w, doc); err != nil {
			return err
		}
		h.apply(*a)
	}
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	format, err := config.FormatOf(path)
	if err != nil {
		return config.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, err
	}
	return config.Decode(path, data, format)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func printStats(w io.Writer, s input.MetricsSnapshot) {
	fmt.Fprintf(w, "keys:       %d\n", s.Keys)
	fmt.Fprintf(w, "actions:    %d\n", s.Actions)
	fmt.Fprintf(w, "errors:     %d\n", s.Errors)
	fmt.Fprintf(w, "no match:   %d\n", s.NoMatches)
	fmt.Fprintf(w, "dropped:    %d\n", s.Dropped)
	fmt.Fprintf(w, "timeouts:   %d\n", s.Timeouts)
	fmt.Fprintf(w, "latency:    avg %s, peak %s\n", s.AvgLatency, s.PeakLatency)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to a configuration file (shorthand)")
	flag.StringVar(&opts.FilePath, "file", "", "Text file to edit")
	flag.StringVar(&opts.FilePath, "f", "", "Text file to edit (shorthand)")
	flag.StringVar(&opts.Keys, "keys", "", "Key sequence to replay, e.g. '3dd' or ':%s/a/b/g<CR>'")
	flag.StringVar(&opts.Keys, "k", "", "Key sequence to replay (shorthand)")
	flag.StringVar(&opts.LuaPath, "lua", "", "Lua script defining a custom text object")
	flag.StringVar(&opts.LuaName, "lua-name", "custom", "Name to register the Lua text object under")
	flag.StringVar(&opts.LuaFunc, "lua-func", "find", "Lua function implementing the text object")
	flag.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Stats, "stats", false, "Print engine counters when done")
	flag.BoolVar(&opts.Pretty, "pretty", false, "Pretty-print JSON output")
	flag.BoolVar(&opts.Interactive, "i", false, "Run interactively in the terminal")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "markmark-keys - replay keys through the modal editing engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: markmark-keys [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  markmark-keys -f notes.md -k '3dd'\n")
		fmt.Fprintf(os.Stderr, "  markmark-keys -f notes.md -k ':%%s/foo/bar/g<CR>' -pretty\n")
		fmt.Fprintf(os.Stderr, "  markmark-keys -f notes.md -i\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("markmark-keys %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if opts.FilePath == "" && flag.NArg() > 0 {
		opts.FilePath = flag.Arg(0)
	}

	return opts
}
