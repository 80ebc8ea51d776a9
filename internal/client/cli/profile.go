package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/anonsen/anonsen/internal/models"
)

// Profile shows the current profile and lets the user change the mutable
// fields (bio and picture). Empty input keeps the current value.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in to edit your profile")
		return nil
	}

	u := a.currentUser
	fmt.Printf("Username: %s\nEmail: %s\nBio: %s\n", u.Username, u.Email, u.Bio)
	if u.ProfilePicture != nil {
		fmt.Println("Profile picture: [set]")
	} else {
		fmt.Println("Profile picture: [none]")
	}

	var upd models.UserUpdate

	bio, err := GetSimpleText(a.reader, "New bio (leave empty to keep)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if bio != "" {
		upd.Bio = &bio
	}

	picturePath, err := GetSimpleText(a.reader, "New profile picture file (leave empty to keep)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if picturePath != "" {
		dataURI, err := encodeImage(picturePath)
		if err != nil {
			fmt.Println("Could not read image:", err.Error())
			return err
		}
		upd.ProfilePicture = &dataURI
	}

	if upd.Bio == nil && upd.ProfilePicture == nil {
		fmt.Println("Nothing to change")
		return nil
	}

	updated, err := a.auth.UpdateProfile(ctx, u.ID, upd)
	if err != nil {
		fmt.Println(friendlyError(err))
		return err
	}

	a.currentUser = updated
	fmt.Println("Profile updated")
	return nil
}
