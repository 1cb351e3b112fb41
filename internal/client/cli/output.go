package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophforum/internal/models"
)

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printThreads(threads []models.Thread) {
	for _, t := range threads {
		label := t.Category
		if c, ok := models.CategoryByKey(t.Category); ok {
			label = c.Label
		}
		a.printf("[%s] %s (%s) by %s, %d replies\n", t.ID, t.Title, label, t.AuthorName, t.Replies)
		if body := strings.TrimSpace(t.Body); body != "" {
			a.printf("    %s\n", body)
		}
	}
}
