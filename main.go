// Copyright
// SPDX-License-Identifier: MIT
// notepad: terminal notepad with autosave, undo/redo, export and print
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"notepad/internal/config"
	"notepad/internal/notepad"
	"notepad/internal/opener"
	"notepad/internal/store"
	"notepad/internal/tui"
	"notepad/internal/tui/state"
)

const Version = "1.0.0"

/* ---------- CLI ---------- */

func main() {
	args := os.Args[1:]
	cmd := "edit"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}
	var err error
	switch cmd {
	case "help":
		if len(args) > 0 {
			helpTopic(args[0])
		} else {
			usage()
		}
		return
	case "version":
		fmt.Println("notepad", Version)
		return
	case "edit":
		err = cmdEdit(args)
	case "init":
		err = cmdInit(args)
	case "cat":
		err = cmdCat(args)
	case "stats":
		err = cmdStats(args)
	case "export":
		err = cmdExport(args)
	case "print":
		err = cmdPrint(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "notepad:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`notepad ` + Version + `
A terminal notepad. Text is autosaved one second after you stop typing.
USAGE
  notepad [command] [options]
COMMANDS
  edit         Open the editor (default when no command is given)
  init         Write a default config file
  cat          Print the stored text
  stats        Print word, character and line counts of the stored text
  export       Write the stored text to <name>.txt
  print        Render the stored text as printable HTML
  help         Show help (try: notepad help edit)
  version      Print version
COMMON OPTIONS
  --config PATH       Config file (default: ~/.notepad/config.json)
  --store KIND        file | sqlite
  --store-path PATH   Override the store location
  --log-file PATH     Append logs to file (created if missing)
  -v                  Debug logs`)
}

func helpTopic(name string) {
	switch name {
	case "edit":
		fmt.Println(`USAGE
  notepad edit [--theme light|dark] [--fullscreen] [--no-mouse] [--no-color] [--name NAME]
DESCRIPTION
  Opens the editor. The menu bar is reached with F10 or alt+f/e/v/h, or with
  the mouse. ctrl+s saves to the store and exports <name>.txt; ctrl+q quits
  after writing any pending autosave. Press F1 inside the editor for all keys.
OPTIONS
  --theme MODE        Start in the light or dark theme
  --fullscreen        Start on the alternate screen
  --no-mouse          Do not capture mouse events
  --no-color          Disable colors (also honored via NO_COLOR)
  --name NAME         Default export filename, without .txt`)
	case "export":
		fmt.Println(`USAGE
  notepad export [--name NAME] [--dir DIR]
DESCRIPTION
  Writes the stored text to DIR/NAME.txt. Defaults come from the config file.`)
	case "print":
		fmt.Println(`USAGE
  notepad print [--out PATH] [--open]
DESCRIPTION
  Renders the stored text as the printable HTML page. Writes to stdout unless
  --out is given. --open hands the page to the system viewer.`)
	default:
		usage()
	}
}

/* ---------- shared setup ---------- */

type globalFlags struct {
	configPath string
	store      string
	storePath  string
	logFile    string
	verbose    bool
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.configPath, "config", config.Path(), "config file")
	fs.StringVar(&g.store, "store", "", "store backend: file | sqlite")
	fs.StringVar(&g.storePath, "store-path", "", "store location")
	fs.StringVar(&g.logFile, "log-file", "", "append logs to file")
	fs.BoolVar(&g.verbose, "v", false, "debug logs")
}

// load reads the config file and applies flag overrides.
func (g globalFlags) load(extra config.Config) (config.Config, error) {
	c, err := config.Load(g.configPath)
	if err != nil {
		return c, err
	}
	c.Merge(config.Config{Store: g.store, StorePath: g.storePath, LogFile: g.logFile})
	c.Merge(extra)
	return c, c.Validate()
}

// openLogger returns a logger on path. Without a path the editor discards
// logs since the terminal is in use; other commands log to stderr under -v.
func openLogger(path string, verbose, interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case path != "":
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			_ = os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case verbose && !interactive:
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "notepad",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openController opens the configured store and loads the document.
func openController(ctx context.Context, c config.Config, logger *log.Logger) (*notepad.Controller, func(), error) {
	path := c.ResolvedStorePath()
	st, err := store.Open(c.Store, path)
	if err != nil {
		return nil, nil, err
	}
	ctl := notepad.NewController(st,
		notepad.WithClipboard(notepad.SystemClipboard{}),
		notepad.WithPrinter(notepad.HTMLPrinter{Viewer: opener.New(logger)}),
		notepad.WithExportDir(c.ExportDir),
		notepad.WithLogger(logger),
	)
	if err := ctl.Load(ctx); err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	logger.Debug("store opened", "backend", c.Store, "path", path)
	return ctl, func() { _ = st.Close() }, nil
}

/* ---------- commands ---------- */

func cmdEdit(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	var g globalFlags
	g.register(fs)
	theme := fs.String("theme", "", "light | dark")
	fullscreen := fs.Bool("fullscreen", false, "start on the alternate screen")
	noMouse := fs.Bool("no-mouse", false, "do not capture mouse events")
	noColor := fs.Bool("no-color", false, "disable colors")
	name := fs.String("name", "", "default export filename")
	_ = fs.Parse(args)

	c, err := g.load(config.Config{Theme: *theme, Fullscreen: *fullscreen, NoMouse: *noMouse, Filename: *name})
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(c.LogFile, g.verbose, true)
	if err != nil {
		return err
	}
	defer closeLog()

	ctl, closeStore, err := openController(context.Background(), c, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	logger.Info("editor started", "version", Version, "store", c.Store)
	return tui.Run(ctl, tui.Options{
		Version:       Version,
		Filename:      c.Filename,
		AutosaveDelay: c.AutosaveDelay(),
		Theme:         state.ParseTheme(c.Theme),
		Fullscreen:    c.Fullscreen,
		Mouse:         !c.NoMouse,
		NoColor:       *noColor,
		Logger:        logger,
	})
}

func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("config", config.Path(), "config file")
	force := fs.Bool("force", false, "overwrite an existing config")
	_ = fs.Parse(args)

	if _, err := os.Stat(*path); err == nil && !*force {
		fmt.Println(*path, "already exists; not overwriting")
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := config.Save(*path, config.Default()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Println("Wrote", *path)
	return nil
}

// loadStored opens the store read-only for the non-interactive commands.
func loadStored(g globalFlags, extra config.Config) (*notepad.Controller, config.Config, *log.Logger, func(), error) {
	c, err := g.load(extra)
	if err != nil {
		return nil, c, nil, nil, err
	}
	logger, closeLog, err := openLogger(c.LogFile, g.verbose, false)
	if err != nil {
		return nil, c, nil, nil, err
	}
	ctl, closeStore, err := openController(context.Background(), c, logger)
	if err != nil {
		closeLog()
		return nil, c, nil, nil, err
	}
	return ctl, c, logger, func() { closeStore(); closeLog() }, nil
}

func cmdCat(args []string) error {
	fs := flag.NewFlagSet("cat", flag.ExitOnError)
	var g globalFlags
	g.register(fs)
	_ = fs.Parse(args)

	ctl, _, _, done, err := loadStored(g, config.Config{})
	if err != nil {
		return err
	}
	defer done()
	fmt.Print(ctl.Text())
	return nil
}

func cmdStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	var g globalFlags
	g.register(fs)
	_ = fs.Parse(args)

	ctl, _, _, done, err := loadStored(g, config.Config{})
	if err != nil {
		return err
	}
	defer done()
	s := ctl.Stats()
	fmt.Printf("Words: %d\nCharacters: %d\nLines: %d\n", s.Words, s.Chars, s.Lines)
	return nil
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	var g globalFlags
	g.register(fs)
	name := fs.String("name", "", "filename without .txt")
	dir := fs.String("dir", "", "output directory")
	_ = fs.Parse(args)

	ctl, c, _, done, err := loadStored(g, config.Config{Filename: *name, ExportDir: *dir})
	if err != nil {
		return err
	}
	defer done()
	path, err := notepad.Export(c.ExportDir, c.Filename, ctl.Text())
	if err != nil {
		return err
	}
	fmt.Println("Wrote", path)
	return nil
}

func cmdPrint(args []string) error {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	var g globalFlags
	g.register(fs)
	out := fs.String("out", "", "write the page to PATH instead of stdout")
	open := fs.Bool("open", false, "open the page in the system viewer")
	_ = fs.Parse(args)

	ctl, _, logger, done, err := loadStored(g, config.Config{})
	if err != nil {
		return err
	}
	defer done()
	if *open {
		viewer := opener.New(logger)
		if err := (notepad.HTMLPrinter{Viewer: viewer}).Print(context.Background(), ctl.Text()); err != nil {
			return err
		}
		viewer.Wait()
		return nil
	}
	page := notepad.PrintHTML(ctl.Text())
	if *out == "" {
		fmt.Print(page)
		return nil
	}
	if err := os.WriteFile(*out, []byte(page), 0644); err != nil {
		return fmt.Errorf("write print page: %w", err)
	}
	fmt.Println("Wrote", *out)
	return nil
}
