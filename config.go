package main

// Global configuration of the editor. Settings are populated from command-line
// flags during initialization.

import "flag"

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	Backend              string // Terminal library: termbox or tcell.
	LineNumbers          bool   // Draw the line-number gutter.
	GutterWidth          int    // Width of the left column holding line numbers.
	UseLogFile           bool   // Whether to write debug logs to a file.
	LogFilePath          string // Where to store the debug logs.
	NumLogsInDebugWindow int    // How many recent logs to show in the UI debug window.
	DevMode              bool   // Shows the debug window and lets Ctrl-C exit.
	ShowColors           bool   // Command-line flag to show the theme and exit.
	ShowKeys             bool   // Command-line flag to list key bindings and exit.
	ShowVersion          bool   // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config Configuration

// InitConfig sets up command-line flags and parses them into the global Config.
func InitConfig() {
	registerFlags(flag.CommandLine, &Config)
	flag.Parse()
}

func registerFlags(fs *flag.FlagSet, c *Configuration) {
	fs.StringVar(&c.Backend, "backend", "termbox", "Terminal backend (termbox or tcell)")
	fs.BoolVar(&c.LineNumbers, "number", false, "Show line numbers")
	fs.IntVar(&c.GutterWidth, "gutter-width", 5, "Width of the gutter")
	fs.BoolVar(&c.UseLogFile, "log", false, "Enable logging to file")
	fs.StringVar(&c.LogFilePath, "log-path", "/tmp/king-editor-debug.log", "Path to log file")
	fs.IntVar(&c.NumLogsInDebugWindow, "num-logs", 10, "Number of logs in debug window")
	fs.BoolVar(&c.DevMode, "dev", false, "Enable development mode")
	fs.BoolVar(&c.ShowColors, "colors", false, "Show theme colors")
	fs.BoolVar(&c.ShowKeys, "keys", false, "Show key bindings")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version")
}
