package cli

import (
	"context"

	"github.com/dmitrijs2005/gophforum/internal/models"
)

// Feed reloads the first page and prints it.
func (a *App) Feed(ctx context.Context, _ []string) error {
	if err := a.feed.InitialLoad(ctx); err != nil {
		return err
	}
	threads := a.feed.Threads()
	if len(threads) == 0 {
		a.println("No threads yet.")
		return nil
	}
	a.printThreads(threads)
	return nil
}

// More loads the next page and prints only what it added.
func (a *App) More(ctx context.Context, _ []string) error {
	before := len(a.feed.Threads())
	if err := a.feed.LoadMore(ctx); err != nil {
		return err
	}
	threads := a.feed.Threads()
	if len(threads) <= before {
		a.println("No more threads.")
		return nil
	}
	a.printThreads(threads[before:])
	return nil
}

// Post asks for a title, an optional body and a category, then creates the
// thread.
func (a *App) Post(ctx context.Context, _ []string) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if err := required("Title", title); err != nil {
		return err
	}

	body, err := getMultiline(a.reader, "Body (optional)", a.out)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader, "Category (default "+models.DefaultCategory+")", a.out)
	if err != nil {
		return err
	}
	if category == "" {
		category = models.DefaultCategory
	}

	if err := a.feed.Post(ctx, title, body, category); err != nil {
		return err
	}
	a.println("Thread posted. Run 'feed' to see it.")
	return nil
}
