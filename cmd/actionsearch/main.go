package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "actionsearch",
		Usage: "Search editor actions by keyword and run them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML config file (default: user config dir)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to this file, - for stderr",
				Value: "actionsearch.log",
			},
		},
		Before: setupLogging,
		After:  closeLogging,
		Action: paletteCommand,
		Commands: []*cli.Command{
			{
				Name:   "palette",
				Usage:  "Open the interactive search dialog",
				Action: paletteCommand,
			},
			{
				Name:      "search",
				Usage:     "Print the ranked actions matching a keyword",
				ArgsUsage: "KEYWORD",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "all",
						Usage: "List every action instead of matching a keyword",
					},
					&cli.BoolFlag{
						Name:  "show-unavailable",
						Usage: "Include actions that cannot run right now",
					},
					&cli.BoolFlag{
						Name:  "run",
						Usage: "Run the best match and record it in the history",
					},
				},
			},
			{
				Name:   "languages",
				Usage:  "List the languages found in the ISO-639 data",
				Action: languagesCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pager",
						Usage: "Show the list in a pager",
					},
					&cli.BoolFlag{
						Name:  "sorted",
						Usage: "Sort by name using the ambient locale",
					},
					&cli.StringFlag{
						Name:  "iso-codes-dir",
						Usage: "Directory containing iso_639.xml",
					},
				},
			},
		},
	}
}

var logFile *os.File

func setupLogging(c *cli.Context) error {
	switch path := c.String("log-file"); path {
	case "":
		log.SetOutput(io.Discard)
	case "-":
		log.SetOutput(os.Stderr)
	default:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
			return nil
		}
		logFile = f
		log.SetOutput(f)
	}
	return nil
}

func closeLogging(c *cli.Context) error {
	if logFile != nil {
		log.SetOutput(os.Stderr)
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
