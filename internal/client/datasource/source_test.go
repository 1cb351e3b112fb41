package datasource

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsVariantOnce(t *testing.T) {
	assert.True(t, New(true, newFakeBackend()).Remote())
	assert.False(t, New(false, newFakeBackend()).Remote())
	assert.False(t, New(true, nil).Remote())
}

func TestLocal_AuthenticateIsDeterministic(t *testing.T) {
	src := NewLocal(NewBlobs())
	ctx := context.Background()

	a, err := src.Authenticate(ctx, "levi@example.com", "whatever", false, "")
	require.NoError(t, err)
	b, err := src.Authenticate(ctx, "levi@example.com", "different", true, "")
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "bGV2aUBleG", a.ID)
	assert.Len(t, a.ID, 10)
	assert.Equal(t, "levi", a.DisplayName)
	assert.False(t, a.Subscribed)
	assert.Empty(t, a.Media)

	named, err := src.Authenticate(ctx, "levi@example.com", "", true, "Levi F.")
	require.NoError(t, err)
	assert.Equal(t, "Levi F.", named.DisplayName)
}

func TestLocalUserID_ShortEmail(t *testing.T) {
	assert.Equal(t, "YUBi", LocalUserID("a@b"))
}

func TestLocal_ListThreadsWindows(t *testing.T) {
	src := NewLocal(NewBlobs())
	ctx := context.Background()

	tests := []struct {
		offset, limit int
		wantIDs       []string
	}{
		{0, 10, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{0, 3, []string{"0", "1", "2"}},
		{8, 10, []string{"8", "9"}},
		{10, 10, []string{}},
		{25, 5, []string{}},
	}

	for _, tt := range tests {
		got, err := src.ListThreads(ctx, tt.offset, tt.limit)
		require.NoError(t, err)

		ids := make([]string, 0, len(got))
		for _, th := range got {
			ids = append(ids, th.ID)
			assert.Equal(t, "Placeholder body", th.Body)
		}
		assert.Equal(t, tt.wantIDs, ids, "offset=%d limit=%d", tt.offset, tt.limit)
	}

	first, err := src.ListThreads(ctx, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Welcome! Read this first", first[0].Title)
	assert.Equal(t, "ModTeam", first[0].AuthorName)
	assert.Equal(t, "general", first[0].Category)
}

func TestLocal_CreateThreadAndUpload(t *testing.T) {
	blobs := NewBlobs()
	src := NewLocal(blobs)
	ctx := context.Background()

	require.NoError(t, src.CreateThread(ctx, models.Thread{Title: "x"}))

	url, err := src.UploadFile(ctx, "owner", models.File{Name: "a.png", Data: []byte{1, 2}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, BlobScheme))

	f, ok := blobs.Get(url)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2}, f.Data)

	u, err := src.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.NoError(t, src.SignOut(ctx))
}

func TestRemote_SignUpThenSignIn(t *testing.T) {
	backend := newFakeBackend()
	src := NewRemote(backend)
	ctx := context.Background()

	u, err := src.Authenticate(ctx, "a@x.io", "pw", true, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"SignUp", "SignIn"}, backend.calls)
	assert.Equal(t, "id-a@x.io", u.ID)
	assert.Equal(t, "a", u.DisplayName)
	assert.Empty(t, u.Avatar)
	assert.Empty(t, u.Bio)
	assert.NotNil(t, u.Media)
}

func TestRemote_WrongPasswordIsAuthError(t *testing.T) {
	backend := newFakeBackend()
	src := NewRemote(backend)
	ctx := context.Background()

	_, err := src.Authenticate(ctx, "a@x.io", "pw", true, "A")
	require.NoError(t, err)

	u, err := src.Authenticate(ctx, "a@x.io", "nope", false, "")
	assert.Nil(t, u)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAuth)
	assert.Equal(t, "Invalid login credentials", err.Error())
}

func TestRemote_DuplicateSignUpStopsBeforeSignIn(t *testing.T) {
	backend := newFakeBackend()
	src := NewRemote(backend)
	ctx := context.Background()

	_, err := src.Authenticate(ctx, "a@x.io", "pw", true, "")
	require.NoError(t, err)
	backend.calls = nil

	_, err = src.Authenticate(ctx, "a@x.io", "pw", true, "")
	assert.ErrorIs(t, err, common.ErrAuth)
	assert.Equal(t, []string{"SignUp"}, backend.calls)
}

func TestRemote_UploadPathAndURL(t *testing.T) {
	backend := newFakeBackend()
	src := NewRemote(backend).(*remoteSource)
	src.now = func() time.Time { return time.UnixMilli(1700000000123) }

	url, err := src.UploadFile(context.Background(), "u1", models.File{Name: "cat.png", Data: []byte("x")})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.test/media/u1/1700000000123-cat.png", url)
	_, ok := backend.uploads["u1/1700000000123-cat.png"]
	assert.True(t, ok)
}

func TestRemote_ErrorsPassThrough(t *testing.T) {
	backend := newFakeBackend()
	backend.queryErr = common.NewTransferError("relation does not exist")
	src := NewRemote(backend)

	_, err := src.ListThreads(context.Background(), 0, 10)
	var ce *common.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, common.ErrTransfer, ce.Kind)
	assert.Equal(t, "relation does not exist", err.Error())
}

func TestRemote_CurrentUserAndSignOut(t *testing.T) {
	backend := newFakeBackend()
	src := NewRemote(backend)
	ctx := context.Background()

	u, err := src.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	_, err = src.Authenticate(ctx, "b@x.io", "pw", true, "Bee")
	require.NoError(t, err)

	u, err = src.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Bee", u.DisplayName)

	require.NoError(t, src.SignOut(ctx))
	u, err = src.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestRemote_ThreadsNewestFirst(t *testing.T) {
	backend := newFakeBackend()
	src := NewRemote(backend)
	ctx := context.Background()

	require.NoError(t, src.CreateThread(ctx, models.Thread{Title: "old"}))
	require.NoError(t, src.CreateThread(ctx, models.Thread{Title: "new"}))

	got, err := src.ListThreads(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Title)
}
