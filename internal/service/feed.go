package service

import (
	"context"
	"fmt"

	"github.com/anonsen/anonsen/internal/common"
	"github.com/anonsen/anonsen/internal/models"
	"github.com/anonsen/anonsen/internal/repository/posts"
)

// PostInput is what the author supplies for a new post. The author
// snapshot is added by the service from the current identity.
type PostInput struct {
	Caption       string
	Image         *string
	Location      string
	AllowComments bool
	AllowLikes    bool
	IsTextOnly    bool
}

// FeedService drives post creation and interactions. Content validation
// lives here, in the collaborator layer, not in the repository.
type FeedService interface {
	CreatePost(ctx context.Context, author *models.User, in PostInput) (*models.Post, error)
	Feed(ctx context.Context) []models.Post
	ToggleLike(ctx context.Context, postID int64, user *models.User) (*models.Post, error)
}

type feedService struct {
	posts *posts.Repository
}

func NewFeedService(posts *posts.Repository) FeedService {
	return &feedService{posts: posts}
}

// CreatePost requires a caption or an image and snapshots the author's
// identity and avatar into the post.
func (s *feedService) CreatePost(ctx context.Context, author *models.User, in PostInput) (*models.Post, error) {
	if author == nil {
		return nil, common.ErrNoSession
	}
	if in.Caption == "" && (in.Image == nil || *in.Image == "") {
		return nil, fmt.Errorf("%w: a post needs a caption or an image", common.ErrValidation)
	}

	draft := models.PostDraft{
		UserID:        author.ID,
		Username:      author.Username,
		UserAvatar:    author.ProfilePicture,
		Caption:       in.Caption,
		Image:         in.Image,
		Location:      in.Location,
		AllowComments: in.AllowComments,
		AllowLikes:    in.AllowLikes,
		IsTextOnly:    in.IsTextOnly,
	}
	return s.posts.Create(ctx, draft)
}

// Feed returns all posts, newest first.
func (s *feedService) Feed(_ context.Context) []models.Post {
	return s.posts.ListAll()
}

func (s *feedService) ToggleLike(ctx context.Context, postID int64, user *models.User) (*models.Post, error) {
	if user == nil {
		return nil, common.ErrNoSession
	}
	return s.posts.ToggleLike(ctx, postID, user.ID)
}
