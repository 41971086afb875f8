package report

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/daily-ratings/internal/common"
	"github.com/dtnitsch/daily-ratings/models"
	"github.com/dtnitsch/daily-ratings/pkg/analytics"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

type point struct {
	Date   string  `yaml:"date"`
	Rating float64 `yaml:"rating"`
	Count  int     `yaml:"count,omitempty"`
}

type chartOutput struct {
	User   string  `yaml:"user"`
	View   string  `yaml:"view"`
	Window string  `yaml:"window"`
	Today  string  `yaml:"today"`
	Points []point `yaml:"points"`
}

type bigramOutput struct {
	User     string               `yaml:"user"`
	Window   string               `yaml:"window"`
	Today    string               `yaml:"today"`
	Language string               `yaml:"language"`
	Tokens   int                  `yaml:"tokens"`
	Distinct int                  `yaml:"distinct"`
	Bigrams  []models.BigramCount `yaml:"bigrams"`
}

// ChartAction prints the daily or weekly ratings series as YAML.
func ChartAction(c *cli.Context) error {
	env, err := common.SetupAuthorized(c)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Identity(c)
	if err != nil {
		return err
	}
	win, err := env.Window(c)
	if err != nil {
		return err
	}
	j, err := env.JournalForRead(user)
	if err != nil {
		return err
	}

	today := env.Clock.Today()
	out := chartOutput{
		User:   user,
		View:   strings.ToLower(c.String("view")),
		Window: win.String(),
		Today:  today.Format(models.DateLayout),
		Points: []point{},
	}

	switch out.View {
	case "daily", "":
		out.View = "daily"
		for _, p := range env.Service.GetDailySeries(j, today, win) {
			out.Points = append(out.Points, point{Date: p.Date.Format(models.DateLayout), Rating: float64(p.Rating)})
		}
	case "weekly":
		for _, b := range env.Service.GetWeeklyMeans(j, today, win) {
			out.Points = append(out.Points, point{Date: b.WeekStart.Format(models.DateLayout), Rating: b.MeanRating, Count: b.Count})
		}
	default:
		return fmt.Errorf("unknown view %q (use: daily, weekly)", c.String("view"))
	}

	return writeYAML(c, out)
}

// BigramsAction prints the most frequent comment bigrams in the window as YAML.
func BigramsAction(c *cli.Context) error {
	env, err := common.SetupAuthorized(c)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Identity(c)
	if err != nil {
		return err
	}
	win, err := env.Window(c)
	if err != nil {
		return err
	}
	j, err := env.JournalForRead(user)
	if err != nil {
		return err
	}

	top := env.Config.Top
	if c.IsSet("top") {
		top = c.Int("top")
	}

	today := env.Clock.Today()
	res := env.Service.AnalyzeWindow(j, today, win, c.StringSlice("stopword"))
	return writeYAML(c, bigramOutput{
		User:     user,
		Window:   win.String(),
		Today:    today.Format(models.DateLayout),
		Language: string(res.Language),
		Tokens:   res.Tokens,
		Distinct: len(res.Frequencies),
		Bigrams:  analytics.TopBigrams(res.Frequencies, top),
	})
}

func writeYAML(c *cli.Context, v any) error {
	yamlBytes, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = c.App.Writer.Write(yamlBytes)
	return err
}
