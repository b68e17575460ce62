// Package main is the entry point for copyline.
//
// With -line the file's path and that line are copied directly to the
// clipboard and the program exits. Without it, the file opens in a small
// viewer whose keys trigger the same copy commands.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"

	lua "github.com/yuin/gopher-lua"

	"copyline/internal/clipboard"
	"copyline/internal/command"
	"copyline/internal/config"
	"copyline/internal/extension"
	extlua "copyline/internal/extension/lua"
	"copyline/internal/host"
	"copyline/internal/l10n"
	"copyline/internal/logging"
	"copyline/internal/viewer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	locale     string
	workspace  string
	line       int
	absolute   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	var (
		opts        options
		showVersion bool
	)
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.locale, "locale", "", "Override the configured locale (e.g. \"de\")")
	flag.StringVar(&opts.workspace, "workspace", "", "Workspace root for relative paths (default: current directory)")
	flag.IntVar(&opts.line, "line", 0, "Copy FILE's path with this 1-based line and exit (headless mode)")
	flag.BoolVar(&opts.absolute, "abs", false, "Copy the absolute path in headless mode")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("copyline %s (%s)\n", version, commit)
		return 0
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: copyline [flags] FILE")
		flag.PrintDefaults()
		return 1
	}
	file, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}

	if opts.workspace == "" {
		opts.workspace, _ = os.Getwd()
	}
	root, err := filepath.Abs(opts.workspace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.line > 0 {
		return runHeadless(file, root, cfg, opts)
	}
	return runViewer(file, root, cfg, cfgPath)
}

// staticEditor presents a fixed file and cursor as the active editor.
type staticEditor struct {
	path string
	line int // 0-based
}

func (e staticEditor) ActiveDocument() (host.Document, bool) {
	return host.Document{Scheme: host.SchemeFile, Path: e.path}, true
}

func (e staticEditor) CursorLine() int { return e.line }

// consoleUI prints notifications to stdout/stderr and remembers whether
// anything went wrong, for the exit code.
type consoleUI struct {
	failed atomic.Bool
}

func (u *consoleUI) Notify(message string, level host.NotificationLevel) error {
	if level == host.NotifyInfo {
		fmt.Println(message)
		return nil
	}
	if level == host.NotifyError {
		u.failed.Store(true)
	}
	fmt.Fprintln(os.Stderr, message)
	return nil
}

// runHeadless drives the extension pipeline once without a terminal.
func runHeadless(file, root string, cfg config.Config, opts options) int {
	if _, err := os.Stat(file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	ui := &consoleUI{}
	ext := extension.New(host.Context{
		Editor:    staticEditor{path: file, line: opts.line - 1},
		Workspace: viewer.Workspace{Root: root},
		Clipboard: clipboard.NewSystem(),
		UI:        ui,
	}, l10n.New(cfg.Locale).T, extension.WithLogger(log))

	reg := command.NewRegistry()
	if err := ext.Activate(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer ext.Deactivate(reg)

	id := extension.CmdCopyRelativePath
	if opts.absolute {
		id = extension.CmdCopyAbsolutePath
	}
	if err := reg.Execute(id, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if ui.failed.Load() {
		return 1
	}
	return 0
}

// runViewer opens the file in the tcell viewer host.
func runViewer(file, root string, cfg config.Config, cfgPath string) int {
	log := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	reg := command.NewRegistry()

	v, err := viewer.New(viewer.Options{
		Path:     file,
		Config:   cfg,
		Registry: reg,
		Logger:   log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The catalog can be swapped by a config reload; the extension reads
	// it through this pointer on every lookup.
	var catalog atomic.Pointer[l10n.Catalog]
	catalog.Store(l10n.New(cfg.Locale))
	lookup := func(key string, args ...any) string {
		return catalog.Load().T(key, args...)
	}

	ext := extension.New(host.Context{
		Editor:    v,
		Workspace: viewer.Workspace{Root: root},
		Clipboard: clipboard.NewSystem(),
		UI:        v,
	}, lookup, extension.WithLogger(log))

	if err := ext.Activate(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer ext.Deactivate(reg)

	if cfgPath != "" {
		watcher, err := config.NewWatcher(cfgPath, func(next config.Config) {
			catalog.Store(l10n.New(next.Locale))
			v.SetConfig(next)
		})
		if err != nil {
			log.Warn("config watcher unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	runInitScript(ext, log)

	// Handle signals for graceful shutdown.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		<-signals
		v.Stop()
	}()

	if err := v.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runInitScript executes the user's init.lua, if present, with the
// copyline module installed.
func runInitScript(ext *extension.Extension, log *logging.Logger) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return
	}
	path := filepath.Join(dir, "copyline", "init.lua")
	if _, err := os.Stat(path); err != nil {
		return
	}

	L := lua.NewState()
	defer L.Close()

	if err := extlua.NewBridge(ext).Register(L); err != nil {
		log.Warn("lua bridge: %v", err)
		return
	}
	if err := L.DoFile(path); err != nil {
		log.Warn("init.lua: %v", err)
	}
}
