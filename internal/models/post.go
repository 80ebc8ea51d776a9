package models

import "time"

// Post is a feed entry. The author fields are a snapshot taken at
// creation time and are not updated when the user later edits their
// profile.
type Post struct {
	ID int64 `json:"id"`

	UserID     int64   `json:"userId"`
	Username   string  `json:"username"`
	UserAvatar *string `json:"userAvatar"`

	Caption string `json:"caption"`

	// Image is an opaque data-URI string, nil for text-only posts.
	Image *string `json:"image"`

	Location string `json:"location"`

	AllowComments bool `json:"allowComments"`
	AllowLikes    bool `json:"allowLikes"`
	IsTextOnly    bool `json:"isTextOnly"`

	CreatedAt time.Time `json:"createdAt"`

	// Likes always equals len(LikedBy).
	Likes   int64   `json:"likes"`
	LikedBy []int64 `json:"likedBy"`

	// Comments is carried for layout compatibility; no operation
	// mutates it.
	Comments int64 `json:"comments"`
}

// LikedByContains reports whether userID already liked the post.
func (p *Post) LikedByContains(userID int64) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// PostDraft is the author-supplied part of a new post plus the author
// snapshot added by the calling collaborator. The repository accepts any
// draft; content requirements (caption or image) are enforced upstream.
type PostDraft struct {
	UserID     int64
	Username   string
	UserAvatar *string

	Caption       string
	Image         *string
	Location      string
	AllowComments bool
	AllowLikes    bool
	IsTextOnly    bool
}
