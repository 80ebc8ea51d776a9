package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anonsen/anonsen/internal/service"
)

func (a *App) Post(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in to create a post")
		return nil
	}

	caption, err := GetSimpleText(a.reader, "Caption", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	imagePath, err := GetSimpleText(a.reader, "Image file (leave empty for a text-only post)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	var image *string
	if imagePath != "" {
		dataURI, err := encodeImage(imagePath)
		if err != nil {
			fmt.Println("Could not read image:", err.Error())
			return err
		}
		image = &dataURI
	}

	location, err := GetSimpleText(a.reader, "Location (optional)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	post, err := a.feed.CreatePost(ctx, a.currentUser, service.PostInput{
		Caption:       caption,
		Image:         image,
		Location:      location,
		AllowComments: true,
		AllowLikes:    true,
		IsTextOnly:    image == nil,
	})
	if err != nil {
		fmt.Println(friendlyError(err))
		return err
	}

	fmt.Printf("Post %d published\n", post.ID)
	return nil
}

func (a *App) Feed(ctx context.Context) error {
	posts := a.feed.Feed(ctx)
	if len(posts) == 0 {
		fmt.Println("The feed is empty. Be the first to post!")
		return nil
	}

	for _, p := range posts {
		var sb strings.Builder
		fmt.Fprintf(&sb, "#%d @%s · %s", p.ID, p.Username, p.CreatedAt.Format("2006-01-02 15:04"))
		if p.Location != "" {
			fmt.Fprintf(&sb, " · %s", p.Location)
		}
		fmt.Println(sb.String())
		if p.Caption != "" {
			fmt.Println("  " + p.Caption)
		}
		if p.Image != nil {
			fmt.Println("  [image]")
		}
		fmt.Printf("  %d like(s)\n", p.Likes)
	}
	return nil
}

func (a *App) Like(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in to like posts")
		return nil
	}

	idText, err := GetSimpleText(a.reader, "Post id", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	postID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Println("Post id must be a number")
		return err
	}

	post, err := a.feed.ToggleLike(ctx, postID, a.currentUser)
	if err != nil {
		fmt.Println(friendlyError(err))
		return err
	}

	if post.LikedByContains(a.currentUser.ID) {
		fmt.Printf("Liked post %d (%d like(s))\n", post.ID, post.Likes)
	} else {
		fmt.Printf("Unliked post %d (%d like(s))\n", post.ID, post.Likes)
	}
	return nil
}

// encodeImage reads a local image file into a data URI, the format posts
// and profile pictures are persisted in.
func encodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%s is not an image file", path)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
