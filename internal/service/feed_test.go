package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonsen/anonsen/internal/common"
	"github.com/anonsen/anonsen/internal/models"
	"github.com/anonsen/anonsen/internal/repository/users"
)

func loginDemo(t *testing.T, e *env) *models.User {
	t.Helper()
	user, err := e.auth.Login(context.Background(), users.DemoEmail, users.DemoPassword, true)
	require.NoError(t, err)
	return user
}

func TestCreatePost_SnapshotsAuthor(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	pic := "data:image/png;base64,AAAA"
	author, err := e.auth.UpdateProfile(ctx, 1, models.UserUpdate{ProfilePicture: &pic})
	require.NoError(t, err)

	post, err := e.feed.CreatePost(ctx, author, PostInput{Caption: "first!", IsTextOnly: true, AllowLikes: true})
	require.NoError(t, err)

	assert.Equal(t, author.ID, post.UserID)
	assert.Equal(t, "demo_user", post.Username)
	require.NotNil(t, post.UserAvatar)
	assert.Equal(t, pic, *post.UserAvatar)
}

func TestCreatePost_AuthorSnapshotIsNotUpdatedLater(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	author := loginDemo(t, e)

	post, err := e.feed.CreatePost(ctx, author, PostInput{Caption: "before rename", IsTextOnly: true})
	require.NoError(t, err)
	require.Nil(t, post.UserAvatar)

	pic := "data:image/png;base64,BBBB"
	_, err = e.auth.UpdateProfile(ctx, author.ID, models.UserUpdate{ProfilePicture: &pic})
	require.NoError(t, err)

	got := e.feed.Feed(ctx)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].UserAvatar, "existing posts keep the avatar from creation time")
}

func TestCreatePost_RequiresCaptionOrImage(t *testing.T) {
	e := newEnv(t)
	author := loginDemo(t, e)
	ctx := context.Background()

	_, err := e.feed.CreatePost(ctx, author, PostInput{})
	require.ErrorIs(t, err, common.ErrValidation)

	empty := ""
	_, err = e.feed.CreatePost(ctx, author, PostInput{Image: &empty})
	require.ErrorIs(t, err, common.ErrValidation)

	img := "data:image/jpeg;base64,CCCC"
	post, err := e.feed.CreatePost(ctx, author, PostInput{Image: &img})
	require.NoError(t, err)
	assert.NotNil(t, post.Image)
}

func TestCreatePost_RequiresIdentity(t *testing.T) {
	e := newEnv(t)

	_, err := e.feed.CreatePost(context.Background(), nil, PostInput{Caption: "hi"})
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestFeed_NewestFirst(t *testing.T) {
	e := newEnv(t)
	author := loginDemo(t, e)
	ctx := context.Background()

	for _, caption := range []string{"one", "two", "three"} {
		_, err := e.feed.CreatePost(ctx, author, PostInput{Caption: caption, IsTextOnly: true})
		require.NoError(t, err)
		e.clock.Advance(time.Second)
	}

	got := e.feed.Feed(ctx)
	require.Len(t, got, 3)
	assert.Equal(t, "three", got[0].Caption)
	assert.Equal(t, "two", got[1].Caption)
	assert.Equal(t, "one", got[2].Caption)
}

func TestToggleLike_RequiresIdentity(t *testing.T) {
	e := newEnv(t)

	_, err := e.feed.ToggleLike(context.Background(), 1, nil)
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestToggleLike_RoundTrip(t *testing.T) {
	e := newEnv(t)
	author := loginDemo(t, e)
	ctx := context.Background()

	post, err := e.feed.CreatePost(ctx, author, PostInput{Caption: "like me", IsTextOnly: true, AllowLikes: true})
	require.NoError(t, err)

	liked, err := e.feed.ToggleLike(ctx, post.ID, author)
	require.NoError(t, err)
	assert.Equal(t, int64(1), liked.Likes)

	unliked, err := e.feed.ToggleLike(ctx, post.ID, author)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unliked.Likes)
	assert.Empty(t, unliked.LikedBy)
}
