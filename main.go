package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/daily-ratings/internal/auth"
	"github.com/dtnitsch/daily-ratings/internal/entries"
	"github.com/dtnitsch/daily-ratings/internal/report"
	"github.com/dtnitsch/daily-ratings/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func userFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "whose journal to use (one of the configured users)",
		EnvVars: []string{"DAILY_RATINGS_USER"},
	}
}

func dateFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "entry date as YYYY-MM-DD (default: today)",
	}
}

func windowFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "window",
		Aliases: []string{"w"},
		Value:   "all",
		Usage:   "time window: all, 7d, 30d",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "daily-ratings",
		Usage: "record one rating per day and review trends in your comments",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to YAML config (default: daily-ratings.yaml if present)"},
			&cli.StringFlag{Name: "data-dir", Usage: "directory holding the per-user rating tables"},
			&cli.StringFlag{Name: "today", Usage: "override today's date (YYYY-MM-DD)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		},
		Commands: []*cli.Command{
			{
				Name:  "quickstart",
				Usage: "print a YAML quick start guide",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return err
				},
			},
			{
				Name:   "login",
				Usage:  "unlock the journal with the shared password",
				Action: auth.LoginAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, Usage: "the shared password"},
				},
			},
			{
				Name:   "logout",
				Usage:  "lock the journal again",
				Action: auth.LogoutAction,
			},
			{
				Name:   "add",
				Usage:  "add or update the rating for a day",
				Action: entries.AddAction,
				Flags: []cli.Flag{
					userFlag(),
					dateFlag(),
					&cli.IntFlag{Name: "rating", Aliases: []string{"r"}, Required: true, Usage: "rating from 1 to 10"},
					&cli.StringFlag{Name: "comment", Aliases: []string{"m"}, Usage: "optional comment"},
				},
			},
			{
				Name:   "delete",
				Usage:  "delete the rating for a day",
				Action: entries.DeleteAction,
				Flags:  []cli.Flag{userFlag(), dateFlag()},
			},
			{
				Name:   "show",
				Usage:  "show the rating for a day",
				Action: entries.ShowAction,
				Flags:  []cli.Flag{userFlag(), dateFlag()},
			},
			{
				Name:   "list",
				Usage:  "list all ratings",
				Action: entries.ListAction,
				Flags:  []cli.Flag{userFlag()},
			},
			{
				Name:   "chart",
				Usage:  "print the daily or weekly ratings series",
				Action: report.ChartAction,
				Flags: []cli.Flag{
					userFlag(),
					windowFlag(),
					&cli.StringFlag{Name: "view", Value: "daily", Usage: "daily or weekly"},
				},
			},
			{
				Name:   "bigrams",
				Usage:  "print the most frequent word pairs in comments",
				Action: report.BigramsAction,
				Flags: []cli.Flag{
					userFlag(),
					windowFlag(),
					&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Usage: "number of bigrams to print (0 = all)"},
					&cli.StringSliceFlag{Name: "stopword", Aliases: []string{"s"}, Usage: "extra stopword (repeatable)"},
					&cli.StringFlag{Name: "language", Usage: "stopword language: auto, english, german"},
					&cli.BoolFlag{Name: "stem", Usage: "reduce words to their stem before pairing"},
					&cli.BoolFlag{Name: "per-token-stopwords", Usage: "drop stopwords before pairing (changes counts: default matches whole pairs only)"},
				},
			},
		},
	}
}
