package main

// The entry point of the king editor. It handles command-line flags, sets up
// the debug log, picks the terminal backend and starts the main editor loop.

import (
	"flag"
	"fmt"
	"os"

	"king/internal/editor"
	"king/internal/logging"
	"king/internal/terminal"
)

// Version of the editor, injected at build time.
var Version = "dev"

// maxLogMessages bounds the in-memory debug log.
const maxLogMessages = 100

func main() {
	// Initialize configuration from flags.
	InitConfig()

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	// Print key bindings if -keys flag is provided.
	if Config.ShowKeys {
		PrintKeys(os.Stdout, editor.DefaultKeymap())
		return
	}

	backend, err := newBackend(Config.Backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Draw the theme if -colors flag is provided.
	if Config.ShowColors {
		if err := PrintColors(backend); err != nil {
			fmt.Fprintf(os.Stderr, "failed to show colors: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(backend, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newBackend(name string) (terminal.Backend, error) {
	switch name {
	case "termbox":
		return terminal.NewTermbox(terminal.DefaultTheme), nil
	case "tcell":
		return terminal.NewTcell(nil, terminal.DefaultTheme), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want termbox or tcell)", name)
}

func run(backend terminal.Backend, args []string) error {
	log := logging.New(maxLogMessages)
	if Config.UseLogFile {
		closeLog, err := log.OpenFile(Config.LogFilePath)
		if err != nil {
			return err
		}
		defer closeLog()
	}

	opts := terminal.RenderOptions{
		Version:     Version,
		LineNumbers: Config.LineNumbers,
		GutterWidth: Config.GutterWidth,
		DevMode:     Config.DevMode,
		NumLogs:     Config.NumLogsInDebugWindow,
	}

	if err := backend.Init(); err != nil {
		return fmt.Errorf("failed to init %s: %w", Config.Backend, err)
	}
	defer backend.Close()

	w, h := backend.Size()
	e := editor.New(h-1, w-opts.Gutter(), editor.WithLog(log))

	// Open the file given on the command line, like :edit would.
	if len(args) > 0 {
		if err := e.Execute(editor.Edit(args[0])); err != nil {
			return fmt.Errorf("failed to open file %s: %w", args[0], err)
		}
	}

	// Enter the main event loop.
	return terminal.Run(e, backend, opts)
}
