package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todoreducer/internal/cli"
	"github.com/idilsaglam/todoreducer/internal/config"
	"github.com/idilsaglam/todoreducer/internal/logger"
	"github.com/idilsaglam/todoreducer/internal/todo"
	"github.com/idilsaglam/todoreducer/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}

	// Root flags (apply to every subcommand), overriding the environment.
	theme := flag.String("theme", cfg.Theme, "color theme: classic, neon or mono")
	idSource := flag.String("id-source", cfg.IDSource, "id generator: uuid, counter or clock")
	groupPending := flag.Bool("group", false, "group replay output by pending/done")
	logFile := flag.String("log-file", cfg.LogFile, "append debug logs to this file")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	cfg.LogFile, cfg.LogLevel = *logFile, *logLevel
	closer, err := logger.Init(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 1
	}
	defer closer.Close()

	th, err := ui.ThemeByName(*theme)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	ids, err := todo.NewIDSource(*idSource)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return cli.Run(flag.Args(), cli.Options{
		Theme:     th,
		IDs:       ids,
		AltScreen: cfg.AltScreen,
		Group:     *groupPending,
	})
}
