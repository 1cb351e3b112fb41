package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

func (a *App) Categories(_ context.Context, _ []string) error {
	for _, c := range models.Categories {
		a.printf("%-8s %-12s %s\n", c.Key, c.Label, c.Color)
	}
	return nil
}

// Category prints the top threads of one category.
func (a *App) Category(_ context.Context, args []string) error {
	if len(args) == 0 {
		return common.NewValidationError("usage: category <key>")
	}
	c, ok := models.CategoryByKey(args[0])
	if !ok {
		return common.NewValidationError(fmt.Sprintf("%s: %q", common.ErrInvalidCategory, args[0]))
	}

	a.printf("%s\n", c.Label)
	top := models.TopThreads(c.Key)
	if len(top) == 0 {
		a.println("  no threads yet")
		return nil
	}
	for _, t := range top {
		a.printf("  %s by %s, %d replies\n", t.Title, t.Author, t.Replies)
	}
	return nil
}

func (a *App) Downloads(_ context.Context, _ []string) error {
	for _, d := range models.Downloads {
		a.printf("%-28s %s\n", d.Name, d.Size)
	}
	return nil
}
