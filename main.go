package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ged/config"
	"ged/editor"
	"ged/terminal"
	"ged/version"
)

var (
	initConfig  = flag.Bool("init-config", false, "Create a default config file and exit.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("ged %s\n", version.GetFullVersion())
		os.Exit(0)
	}

	if *initConfig {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "ged: saving config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg := config.LoadConfig()

	if cfg.EnableLogger {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ged: opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	// No filename means nothing to edit; that is not an error.
	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: ged [filename]")
		os.Exit(1)
	}
	if len(args) == 0 || args[0] == "" {
		return
	}
	filename := args[0]

	term := terminal.New()
	defer term.Close()

	clip := editor.NewClipboard()
	e, err := editor.NewEditor(term, cfg, clip, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ged: %v\n", err)
		os.Exit(1)
	}

	if err := e.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ged: %v\n", err)
		os.Exit(1)
	}
}
