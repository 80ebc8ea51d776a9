// Package posts holds the post repository: an in-memory ordered collection
// of feed entries backed by the persistent store, newest first.
package posts

import (
	"context"
	"sort"

	"github.com/anonsen/anonsen/internal/common"
	"github.com/anonsen/anonsen/internal/logging"
	"github.com/anonsen/anonsen/internal/models"
	"github.com/anonsen/anonsen/internal/storage"
	"github.com/anonsen/anonsen/internal/timex"
)

// Repository is the sole mutator of the posts collection. Not safe for
// concurrent use.
type Repository struct {
	collection *storage.Collection[models.Post]
	clock      timex.Clock
	posts      []models.Post
	lastID     int64
}

func NewRepository(backend storage.Backend, clock timex.Clock, log logging.Logger) *Repository {
	return &Repository{
		collection: storage.NewCollection[models.Post](backend, storage.PostsKey, log),
		clock:      clock,
	}
}

// Init loads the persisted posts. An empty store stays empty (no demo
// seeding) but is persisted once so the key exists.
func (r *Repository) Init(ctx context.Context) error {
	r.posts = r.collection.Load(ctx)
	for _, p := range r.posts {
		if p.ID > r.lastID {
			r.lastID = p.ID
		}
	}
	if len(r.posts) == 0 {
		return r.collection.Save(ctx, r.posts)
	}
	return nil
}

// nextID derives ids from the clock (milliseconds) but forces them
// strictly increasing past anything already assigned, so rapid creation
// cannot collide the way raw timestamps can.
func (r *Repository) nextID() int64 {
	id := r.clock.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// Create inserts a new post at the front of the collection (newest first)
// and persists. The draft is accepted as given; content validation is the
// calling collaborator's job.
func (r *Repository) Create(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	post := models.Post{
		ID:            r.nextID(),
		UserID:        draft.UserID,
		Username:      draft.Username,
		UserAvatar:    draft.UserAvatar,
		Caption:       draft.Caption,
		Image:         draft.Image,
		Location:      draft.Location,
		AllowComments: draft.AllowComments,
		AllowLikes:    draft.AllowLikes,
		IsTextOnly:    draft.IsTextOnly,
		CreatedAt:     r.clock.Now(),
		LikedBy:       []int64{},
	}

	r.posts = append([]models.Post{post}, r.posts...)

	if err := r.collection.Save(ctx, r.posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListAll returns all posts ordered by creation time descending. The sort
// is stable; ties keep insertion order, which is already newest first.
func (r *Repository) ListAll() []models.Post {
	out := make([]models.Post, len(r.posts))
	copy(out, r.posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ToggleLike adds userID to the post's like set, or removes it when
// already present, keeping the likes counter equal to the set size.
func (r *Repository) ToggleLike(ctx context.Context, postID, userID int64) (*models.Post, error) {
	var post *models.Post
	for i := range r.posts {
		if r.posts[i].ID == postID {
			post = &r.posts[i]
			break
		}
	}
	if post == nil {
		return nil, common.ErrNotFound
	}

	liked := -1
	for i, id := range post.LikedBy {
		if id == userID {
			liked = i
			break
		}
	}
	if liked >= 0 {
		post.LikedBy = append(post.LikedBy[:liked], post.LikedBy[liked+1:]...)
	} else {
		post.LikedBy = append(post.LikedBy, userID)
	}
	post.Likes = int64(len(post.LikedBy))

	if err := r.collection.Save(ctx, r.posts); err != nil {
		return nil, err
	}
	out := *post
	return &out, nil
}
