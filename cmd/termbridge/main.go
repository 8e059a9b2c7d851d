package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/termbridge/internal/config"
	"github.com/standardbeagle/termbridge/internal/debug"
	"github.com/standardbeagle/termbridge/internal/lookup"
	"github.com/standardbeagle/termbridge/internal/terms"
	"github.com/standardbeagle/termbridge/internal/version"
	"github.com/standardbeagle/termbridge/internal/xliff"
)

func main() {
	app := &cli.App{
		Name:                   "termbridge",
		Usage:                  "Curated terminology lookup for localization pipelines",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
			&cli.StringSliceFlag{
				Name:    "terminology",
				Aliases: []string{"t"},
				Usage:   "Ingest XLIFF files matching glob patterns (e.g. --terminology 'translations/**/*.xlf')",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Write debug output to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				debug.Enable()
			}
			return nil
		},
		Commands: []*cli.Command{
			lookupCommand(),
			languagesCommand(),
			statsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildEngine loads configuration, ingests the configured terminology files,
// and wires up the lookup engine.
func buildEngine(c *cli.Context) (*lookup.Engine, *config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	store := terms.NewStore()
	patterns := append([]string{}, cfg.Terminology...)
	patterns = append(patterns, c.StringSlice("terminology")...)
	for _, pattern := range patterns {
		added, err := xliff.LoadGlob(store, pattern)
		if err != nil {
			return nil, nil, err
		}
		if debug.Enabled() {
			debug.Logf("cli: pattern %q contributed %d terms", pattern, added)
		}
	}

	engine := lookup.NewEngine(store)
	engine.SetCategories(cfg.Categories)
	engine.SetSeparator(cfg.Separator)
	return engine, cfg, nil
}

func lookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Resolve a source-language term to a target-language translation",
		ArgsUsage: "TERM",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Usage:    "Target language code (e.g. da-DK)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "context",
				Usage: "Business context for disambiguation (e.g. Sales.Quote)",
			},
			&cli.BoolFlag{
				Name:  "fuzzy",
				Usage: "Fall back to fuzzy matching when no exact entry exists",
			},
			&cli.Float64Flag{
				Name:  "threshold",
				Usage: "Fuzzy-match similarity threshold (0.0-1.0, default from config)",
			},
		},
		Action: runLookup,
	}
}

func runLookup(c *cli.Context) error {
	term := c.Args().First()
	if term == "" {
		return cli.Exit("lookup requires a TERM argument", 2)
	}

	engine, cfg, err := buildEngine(c)
	if err != nil {
		return err
	}
	language := c.String("lang")

	if context := c.String("context"); context != "" {
		res, ok := engine.Resolve(term, language, context)
		if !ok {
			printMiss(term, language)
			return cli.Exit("", 1)
		}
		printResolution(term, language, res)
		return nil
	}

	if c.Bool("fuzzy") {
		threshold := cfg.Threshold
		if c.IsSet("threshold") {
			threshold = c.Float64("threshold")
		}
		translation, ok, err := engine.GetTranslationFuzzy(term, language, threshold)
		if err != nil {
			return err
		}
		if !ok {
			printMiss(term, language)
			return cli.Exit("", 1)
		}
		printResolution(term, language, lookup.Resolution{
			Translation: translation,
			Match:       lookup.MatchFuzzy,
		})
		return nil
	}

	translation, ok := engine.GetTranslation(term, language)
	if !ok {
		printMiss(term, language)
		return cli.Exit("", 1)
	}
	printResolution(term, language, lookup.Resolution{
		Translation: translation,
		Match:       lookup.MatchDefault,
		Score:       1.0,
	})
	return nil
}

func languagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "languages",
		Usage: "List languages present in the terminology store with term counts",
		Action: func(c *cli.Context) error {
			engine, _, err := buildEngine(c)
			if err != nil {
				return err
			}
			printLanguages(engine.Store())
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show per-language record statistics for the terminology store",
		Action: func(c *cli.Context) error {
			engine, _, err := buildEngine(c)
			if err != nil {
				return err
			}
			printStats(engine.Store())
			return nil
		},
	}
}
