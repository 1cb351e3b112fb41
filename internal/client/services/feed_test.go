package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_InitialLoadAndLoadMore(t *testing.T) {
	f := NewFeed(newFakeSource(), signedInSession(), logging.Nop{})
	ctx := context.Background()

	require.NoError(t, f.InitialLoad(ctx))
	assert.Len(t, f.Threads(), 10)
	assert.Equal(t, 1, f.Page())

	require.NoError(t, f.LoadMore(ctx))
	assert.Len(t, f.Threads(), 10, "sample list is exhausted after one page")
	assert.Equal(t, 2, f.Page())

	require.NoError(t, f.InitialLoad(ctx))
	assert.Len(t, f.Threads(), 10)
	assert.Equal(t, 1, f.Page())
}

func TestFeed_LoadMoreIsNoOpWhileLoading(t *testing.T) {
	src := newFakeSource()
	src.listGate = make(chan struct{})
	f := NewFeed(src, signedInSession(), logging.Nop{})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- f.LoadMore(ctx) }()

	require.Eventually(t, f.Loading, time.Second, time.Millisecond)

	require.NoError(t, f.LoadMore(ctx))
	require.NoError(t, f.LoadMore(ctx))
	assert.Equal(t, int32(1), src.listCalls.Load())

	close(src.listGate)
	require.NoError(t, <-done)
	assert.False(t, f.Loading())
	assert.Equal(t, 1, f.Page())
	assert.Len(t, f.Threads(), 10)
}

func TestFeed_LoadErrorLeavesStateUnchanged(t *testing.T) {
	src := newFakeSource()
	f := NewFeed(src, signedInSession(), logging.Nop{})
	ctx := context.Background()
	require.NoError(t, f.InitialLoad(ctx))

	src.listErr = common.NewTransferError("boom")
	err := f.LoadMore(ctx)
	require.ErrorIs(t, err, common.ErrTransfer)
	assert.Equal(t, 1, f.Page())
	assert.Len(t, f.Threads(), 10)
	assert.False(t, f.Loading())

	err = f.InitialLoad(ctx)
	require.Error(t, err)
	assert.Len(t, f.Threads(), 10)
}

func TestFeed_CloseDiscardsLateResults(t *testing.T) {
	src := newFakeSource()
	src.listGate = make(chan struct{})
	f := NewFeed(src, signedInSession(), logging.Nop{})

	done := make(chan error, 1)
	go func() { done <- f.InitialLoad(context.Background()) }()
	require.Eventually(t, f.Loading, time.Second, time.Millisecond)

	f.Close()
	close(src.listGate)
	require.NoError(t, <-done)

	assert.Empty(t, f.Threads())
	assert.Equal(t, 0, f.Page())
	require.NoError(t, f.LoadMore(context.Background()))
	assert.Equal(t, int32(1), src.listCalls.Load())
}

func TestFeed_PostRequiresUser(t *testing.T) {
	s, _ := newSession()
	src := newFakeSource()
	f := NewFeed(src, s, logging.Nop{})

	err := f.Post(context.Background(), "t", "b", "tech")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Please log in to post.", err.Error())
	assert.Empty(t, src.created)
}

func TestFeed_PostValidatesCategory(t *testing.T) {
	src := newFakeSource()
	f := NewFeed(src, signedInSession(), logging.Nop{})

	err := f.Post(context.Background(), "t", "b", "politics")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, src.created)
}

func TestFeed_PostUsesSessionAuthorAndDoesNotRefresh(t *testing.T) {
	src := newFakeSource()
	f := NewFeed(src, signedInSession(), logging.Nop{})
	ctx := context.Background()

	require.NoError(t, f.Post(ctx, "Hello", "World", "tech"))
	require.Len(t, src.created, 1)
	got := src.created[0]
	assert.Equal(t, "u1", got.AuthorID)
	assert.Equal(t, "Levi", got.AuthorName)
	assert.Equal(t, "tech", got.Category)
	assert.Equal(t, int32(0), src.listCalls.Load())
}

func TestFeed_PostPropagatesSourceError(t *testing.T) {
	src := newFakeSource()
	src.createErr = errors.New("insert failed")
	f := NewFeed(src, signedInSession(), logging.Nop{})

	assert.EqualError(t, f.Post(context.Background(), "t", "b", "general"), "insert failed")
}

func TestFeed_Subscribe(t *testing.T) {
	src := newFakeSource()
	f := NewFeed(src, signedInSession(), logging.Nop{})
	triggers := make(chan struct{})

	var mu sync.Mutex
	var errs []error
	release := f.Subscribe(context.Background(), triggers, func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	})

	triggers <- struct{}{}
	triggers <- struct{}{}
	require.Eventually(t, func() bool { return f.Page() == 2 }, time.Second, time.Millisecond)

	src.listErr = errors.New("down")
	triggers <- struct{}{}
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(errs) == 1
	}, time.Second, time.Millisecond)

	release()
	release()

	select {
	case triggers <- struct{}{}:
		t.Fatal("worker still receiving after release")
	case <-time.After(20 * time.Millisecond):
	}
}
