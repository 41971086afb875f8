package entries

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/daily-ratings/internal/common"
	"github.com/dtnitsch/daily-ratings/models"
	"github.com/urfave/cli/v2"
)

// AddAction adds or updates the rating for --date (default today).
func AddAction(c *cli.Context) error {
	env, err := common.SetupAuthorized(c)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Identity(c)
	if err != nil {
		return err
	}
	date, err := env.Date(c)
	if err != nil {
		return err
	}
	j, err := env.JournalForWrite(user)
	if err != nil {
		return err
	}

	_, existed := j.Get(date)
	if _, err := env.Service.UpsertEntry(j, user, date, c.Int("rating"), c.String("comment")); err != nil {
		return err
	}

	verb := "added"
	if existed {
		verb = "updated"
	}
	fmt.Fprintf(c.App.Writer, "Rating for %s has been %s!\n", date.Format(models.DateLayout), verb)
	return nil
}

// DeleteAction removes the rating for --date (default today).
func DeleteAction(c *cli.Context) error {
	env, err := common.SetupAuthorized(c)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Identity(c)
	if err != nil {
		return err
	}
	date, err := env.Date(c)
	if err != nil {
		return err
	}
	j, err := env.JournalForWrite(user)
	if err != nil {
		return err
	}

	if _, ok := j.Get(date); !ok {
		fmt.Fprintf(c.App.Writer, "No rating for %s, nothing to delete.\n", date.Format(models.DateLayout))
		return nil
	}
	if _, err := env.Service.DeleteEntry(j, user, date); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Rating for %s has been deleted!\n", date.Format(models.DateLayout))
	return nil
}

// ShowAction prints the entry for --date, or the defaults a new entry starts from.
func ShowAction(c *cli.Context) error {
	env, err := common.SetupAuthorized(c)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Identity(c)
	if err != nil {
		return err
	}
	date, err := env.Date(c)
	if err != nil {
		return err
	}
	j, err := env.JournalForRead(user)
	if err != nil {
		return err
	}

	entry, exists := env.Service.GetEntry(j, date)
	state := "new"
	if exists {
		state = "existing"
	}
	fmt.Fprintf(c.App.Writer, "Date:    %s (%s)\n", entry.Date.Format(models.DateLayout), state)
	fmt.Fprintf(c.App.Writer, "Rating:  %d\n", entry.Rating)
	fmt.Fprintf(c.App.Writer, "Comment: %s\n", entry.Comment)
	return nil
}

// ListAction prints every rating as a table, oldest first.
func ListAction(c *cli.Context) error {
	env, err := common.SetupAuthorized(c)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Identity(c)
	if err != nil {
		return err
	}
	j, err := env.JournalForRead(user)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "### Welcome, %s!\n", user)
	if j.Empty() {
		fmt.Fprintln(w, "No ratings available to display.")
		return nil
	}

	fmt.Fprintf(w, "%-12s %-7s %s\n", "Date", "Rating", "Comment")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, e := range j.Entries() {
		fmt.Fprintf(w, "%-12s %-7d %s\n", e.Date.Format(models.DateLayout), e.Rating, oneLine(e.Comment))
	}

	path := env.Store.PathFor(user)
	if stats, err := env.Store.GetFileStats(path); err == nil {
		fmt.Fprintf(w, "\nTotal: %d ratings | %s (%d bytes, modified %s)\n",
			j.Len(), path, stats.SizeBytes, stats.ModTime.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
