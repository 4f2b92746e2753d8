// Command listscreen shows a demo settings screen in the terminal.
//
// Usage:
//
//	go run ./cmd/listscreen
//	go run ./cmd/listscreen -class circle -width 480 -height 480
//	go run ./cmd/listscreen -profile band.toml -config settings.json -debug debug.log
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/ayn2op/listscreen"
	"github.com/ayn2op/listscreen/store"
	"github.com/ayn2op/listscreen/termhost"
	"github.com/ayn2op/listscreen/textmeasure"
)

type options struct {
	class       string
	width       int
	height      int
	profilePath string
	configPath  string
	debugPath   string
	font        bool
	help        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.class, "class", listscreen.ClassBand, "device class: default, miband, band, square or circle")
	flag.IntVar(&opts.width, "width", 0, "screen width in device units (default: terminal width)")
	flag.IntVar(&opts.height, "height", 0, "screen height in device units (default: terminal height)")
	flag.StringVar(&opts.profilePath, "profile", "", "TOML device profile, overrides -class, -width and -height")
	flag.StringVar(&opts.configPath, "config", "listscreen.json", "settings file")
	flag.StringVar(&opts.debugPath, "debug", "", "write debug log to file")
	flag.BoolVar(&opts.help, "help-footer", true, "show key help on the last terminal row")
	flag.BoolVar(&opts.font, "font", false, "measure text with Go Regular instead of the cell grid")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	logger := log.New(io.Discard, "", 0)
	if opts.debugPath != "" {
		debugFile, err := os.OpenFile(opts.debugPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer debugFile.Close()
		logger = log.New(debugFile, "", log.LstdFlags|log.Lmicroseconds)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	profile, err := loadProfile(opts, cols*termhost.DefaultCellWidth, rows*termhost.DefaultCellHeight)
	if err != nil {
		return err
	}
	logger.Printf("profile %+v", profile)

	settings := store.New(opts.configPath, defaultSettings)
	settings.Load()

	theme := listscreen.Styles
	host := termhost.New(
		termhost.WithHelp(opts.help),
		termhost.WithFocusColor(theme.AccentColor),
	)
	var measurer listscreen.Measurer = textmeasure.Grid{CellWidth: termhost.DefaultCellWidth, CellHeight: termhost.DefaultCellHeight}
	if opts.font {
		measurer = textmeasure.New()
	}

	engine := listscreen.New(host, measurer, profile,
		listscreen.WithTheme(theme),
		listscreen.WithLogger(logger),
		listscreen.WithDebug(opts.debugPath != ""),
	)
	var s listscreen.Screen = newSettingsScreen(engine, settings, logger)
	s.Start()

	return host.Run(screen)
}

func loadProfile(opts options, width, height int) (listscreen.Profile, error) {
	if opts.profilePath != "" {
		f, err := os.Open(opts.profilePath)
		if err != nil {
			return listscreen.Profile{}, fmt.Errorf("open profile: %w", err)
		}
		defer f.Close()
		return listscreen.LoadProfile(f)
	}

	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}
	return listscreen.ProfileFor(opts.class, width, height)
}
