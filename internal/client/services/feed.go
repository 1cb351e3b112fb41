package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/client/datasource"
	"github.com/dmitrijs2005/gophforum/internal/client/session"
	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

// PageSize is the number of threads fetched per page.
const PageSize = 10

const msgLoginToPost = "Please log in to post."

// Feed accumulates pages of threads. Only one load is outstanding at a time.
// A failed load returns its error and leaves the state as it was.
type Feed struct {
	mu      sync.Mutex
	source  datasource.Source
	session *session.Session
	logger  logging.Logger
	now     func() time.Time

	threads []models.Thread
	page    int
	loading bool
	closed  bool
	gen     int
}

func NewFeed(src datasource.Source, s *session.Session, l logging.Logger) *Feed {
	return &Feed{
		source:  src,
		session: s,
		logger:  l.With("module", "feed"),
		now:     time.Now,
		threads: []models.Thread{},
	}
}

// Threads returns a copy of the accumulated threads.
func (f *Feed) Threads() []models.Thread {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Thread(nil), f.threads...)
}

func (f *Feed) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// InitialLoad replaces the feed with the first page. Loads started earlier
// are discarded when they finish.
func (f *Feed) InitialLoad(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.gen++
	gen := f.gen
	f.loading = true
	f.mu.Unlock()

	data, err := f.source.ListThreads(ctx, 0, PageSize)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || gen != f.gen {
		return nil
	}
	f.loading = false
	if err != nil {
		f.logger.Warn(ctx, "initial load failed", "error", err)
		return err
	}
	f.threads = append([]models.Thread{}, data...)
	f.page = 1
	return nil
}

// LoadMore fetches the next page and appends it. It is a no-op while
// another load is outstanding or after Close. Running past the end simply
// appends nothing.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.closed || f.loading {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	gen := f.gen
	offset := f.page * PageSize
	f.mu.Unlock()

	data, err := f.source.ListThreads(ctx, offset, PageSize)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || gen != f.gen {
		return nil
	}
	f.loading = false
	if err != nil {
		f.logger.Warn(ctx, "load more failed", "offset", offset, "error", err)
		return err
	}
	f.threads = append(f.threads, data...)
	f.page++
	return nil
}

// Post creates a thread authored by the signed-in user. The feed is not
// reloaded afterwards.
func (f *Feed) Post(ctx context.Context, title, body, category string) error {
	u := f.session.User()
	if u == nil {
		return common.NewValidationError(msgLoginToPost)
	}
	if !models.IsValidCategory(category) {
		return common.NewValidationError(fmt.Sprintf("%s: %q", common.ErrInvalidCategory, category))
	}

	t := models.Thread{
		Title:      title,
		Body:       body,
		Category:   category,
		AuthorID:   u.ID,
		AuthorName: u.DisplayName,
		CreatedAt:  f.now(),
	}
	if err := f.source.CreateThread(ctx, t); err != nil {
		f.logger.Warn(ctx, "post failed", "error", err)
		return err
	}
	f.logger.Info(ctx, "thread posted", "category", category, "author", u.ID)
	return nil
}

// Close tears the feed down. Results of loads still in flight are dropped.
func (f *Feed) Close() {
	f.mu.Lock()
	f.closed = true
	f.loading = false
	f.mu.Unlock()
}

// Subscribe calls LoadMore for every value received on triggers until ctx
// is done, triggers is closed or release is called. Load errors go to onErr
// when it is not nil. release waits for the worker to exit.
func (f *Feed) Subscribe(ctx context.Context, triggers <-chan struct{}, onErr func(error)) (release func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-triggers:
				if !ok {
					return
				}
				if err := f.LoadMore(ctx); err != nil && onErr != nil {
					onErr(err)
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}
