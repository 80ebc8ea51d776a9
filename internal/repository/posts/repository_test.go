package posts

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonsen/anonsen/internal/common"
	"github.com/anonsen/anonsen/internal/logging"
	"github.com/anonsen/anonsen/internal/models"
	"github.com/anonsen/anonsen/internal/storage"
	"github.com/anonsen/anonsen/internal/timex"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newRepo(t *testing.T, backend storage.Backend) (*Repository, *timex.StubClock) {
	t.Helper()
	clock := timex.NewStubClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	r := NewRepository(backend, clock, discardLogger())
	require.NoError(t, r.Init(context.Background()))
	return r, clock
}

func draft(caption string) models.PostDraft {
	return models.PostDraft{
		UserID:        1,
		Username:      "demo_user",
		Caption:       caption,
		AllowComments: true,
		AllowLikes:    true,
		IsTextOnly:    true,
	}
}

func TestInit_EmptyStoreStaysEmptyAndIsPersisted(t *testing.T) {
	backend := storage.NewMemoryBackend()
	r, _ := newRepo(t, backend)

	require.Empty(t, r.ListAll())

	v, err := backend.Get(context.Background(), storage.PostsKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v, "empty collection must be written out")
}

func TestCreate_SetsDerivedFields(t *testing.T) {
	r, clock := newRepo(t, storage.NewMemoryBackend())

	post, err := r.Create(context.Background(), draft("hello"))
	require.NoError(t, err)

	assert.Equal(t, clock.Now(), post.CreatedAt)
	assert.Equal(t, int64(0), post.Likes)
	assert.Empty(t, post.LikedBy)
	assert.NotNil(t, post.LikedBy)
	assert.Equal(t, int64(0), post.Comments)
	assert.Equal(t, "demo_user", post.Username)
}

func TestCreate_AcceptsEmptyDraft(t *testing.T) {
	// Content validation belongs to the calling collaborator; the
	// repository stores whatever it is handed.
	r, _ := newRepo(t, storage.NewMemoryBackend())

	post, err := r.Create(context.Background(), models.PostDraft{UserID: 2})
	require.NoError(t, err)
	assert.Empty(t, post.Caption)
	assert.Nil(t, post.Image)
}

func TestCreate_IDsAreStrictlyIncreasingUnderRapidCreation(t *testing.T) {
	// The clock does not move between creations, yet ids must not collide.
	r, _ := newRepo(t, storage.NewMemoryBackend())
	ctx := context.Background()

	a, err := r.Create(ctx, draft("a"))
	require.NoError(t, err)
	b, err := r.Create(ctx, draft("b"))
	require.NoError(t, err)
	c, err := r.Create(ctx, draft("c"))
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
	assert.Greater(t, c.ID, b.ID)
}

func TestCreate_IDsContinueAfterReload(t *testing.T) {
	backend := storage.NewMemoryBackend()
	r, _ := newRepo(t, backend)
	ctx := context.Background()

	first, err := r.Create(ctx, draft("first"))
	require.NoError(t, err)

	r2, clock := newRepo(t, backend)
	clock.SetNow(time.UnixMilli(first.ID).Add(-time.Hour)) // clock behind the stored ids
	second, err := r2.Create(ctx, draft("second"))
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestListAll_NewestFirst(t *testing.T) {
	r, clock := newRepo(t, storage.NewMemoryBackend())
	ctx := context.Background()

	t1, err := r.Create(ctx, draft("t1"))
	require.NoError(t, err)
	clock.Advance(time.Minute)
	t2, err := r.Create(ctx, draft("t2"))
	require.NoError(t, err)
	clock.Advance(time.Minute)
	t3, err := r.Create(ctx, draft("t3"))
	require.NoError(t, err)

	got := r.ListAll()
	require.Len(t, got, 3)
	assert.Equal(t, []int64{t3.ID, t2.ID, t1.ID}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestListAll_TiesKeepInsertionOrder(t *testing.T) {
	r, _ := newRepo(t, storage.NewMemoryBackend())
	ctx := context.Background()

	// Same timestamp for all three: the later-created post stays first.
	a, err := r.Create(ctx, draft("a"))
	require.NoError(t, err)
	b, err := r.Create(ctx, draft("b"))
	require.NoError(t, err)
	c, err := r.Create(ctx, draft("c"))
	require.NoError(t, err)

	got := r.ListAll()
	require.Len(t, got, 3)
	assert.Equal(t, []int64{c.ID, b.ID, a.ID}, []int64{got[0].ID, got[1].ID, got[2].ID})
}

func TestToggleLike_TwiceRestoresOriginalState(t *testing.T) {
	r, _ := newRepo(t, storage.NewMemoryBackend())
	ctx := context.Background()

	post, err := r.Create(ctx, draft("likeable"))
	require.NoError(t, err)

	liked, err := r.ToggleLike(ctx, post.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), liked.Likes)
	assert.Equal(t, []int64{7}, liked.LikedBy)

	unliked, err := r.ToggleLike(ctx, post.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unliked.Likes)
	assert.Empty(t, unliked.LikedBy)
}

func TestToggleLike_CounterMatchesSetSize(t *testing.T) {
	r, _ := newRepo(t, storage.NewMemoryBackend())
	ctx := context.Background()

	post, err := r.Create(ctx, draft("popular"))
	require.NoError(t, err)

	for _, userID := range []int64{1, 2, 3} {
		updated, err := r.ToggleLike(ctx, post.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(len(updated.LikedBy)), updated.Likes)
	}

	updated, err := r.ToggleLike(ctx, post.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, updated.LikedBy)
	assert.Equal(t, int64(2), updated.Likes)
}

func TestToggleLike_UnknownPost(t *testing.T) {
	r, _ := newRepo(t, storage.NewMemoryBackend())

	_, err := r.ToggleLike(context.Background(), 12345, 1)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestToggleLike_IsPersisted(t *testing.T) {
	backend := storage.NewMemoryBackend()
	r, _ := newRepo(t, backend)
	ctx := context.Background()

	post, err := r.Create(ctx, draft("durable"))
	require.NoError(t, err)
	_, err = r.ToggleLike(ctx, post.ID, 9)
	require.NoError(t, err)

	r2, _ := newRepo(t, backend)
	got := r2.ListAll()
	require.Len(t, got, 1)
	assert.Equal(t, []int64{9}, got[0].LikedBy)
	assert.Equal(t, int64(1), got[0].Likes)
}
