package cli

import (
	"context"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gophforum/internal/client/services"
	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

func (a *App) Profile(_ context.Context, _ []string) error {
	u := a.session.User()
	if u == nil {
		return common.NewValidationError("Please log in to see your profile.")
	}

	a.printf("%s <%s>\n", u.DisplayName, u.Email)
	a.printf("Bio: %s\n", services.DisplayBio(u))
	if u.Subscribed {
		a.println("Subscribed: yes")
	} else {
		a.println("Subscribed: no")
	}
	if u.Avatar != "" {
		a.printf("Avatar: %s\n", u.Avatar)
	}
	if len(u.Media) == 0 {
		a.println("No media uploaded yet.")
	}
	for _, m := range u.Media {
		a.printf("  %s  %s\n", m.Name, m.URL)
	}
	return nil
}

func (a *App) Bio(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		return common.NewValidationError("Please log in to edit your profile.")
	}
	bio, err := getMultiline(a.reader, "New bio", a.out)
	if err != nil {
		return err
	}
	if err := a.profile.UpdateBio(ctx, bio); err != nil {
		return err
	}
	a.println("Bio updated.")
	return nil
}

func (a *App) Subscribe(ctx context.Context, _ []string) error {
	on, err := a.profile.ToggleSubscribe(ctx)
	if err != nil {
		return err
	}
	if on {
		a.println("Subscribed.")
	} else {
		a.println("Unsubscribed.")
	}
	return nil
}

func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return common.NewValidationError("usage: avatar <path>")
	}
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}
	url, err := a.media.UploadAvatar(ctx, f)
	if err != nil {
		return err
	}
	a.printf("Avatar set: %s\n", url)
	return nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return common.NewValidationError("usage: upload <path>...")
	}
	files := make([]models.File, 0, len(args))
	for _, p := range args {
		f, err := loadFile(p)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	items, err := a.media.UploadMedia(ctx, files)
	if err != nil {
		return err
	}
	for _, m := range items {
		a.printf("Uploaded %s: %s\n", m.Name, m.URL)
	}
	return nil
}

// loadFile reads path and guesses its content type from the extension,
// falling back to sniffing the bytes.
func loadFile(path string) (models.File, error) {
	data, err := readFile(path)
	if err != nil {
		return models.File{}, common.NewValidationError("cannot read " + path + ": " + err.Error())
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return models.File{Name: filepath.Base(path), ContentType: ct, Data: data}, nil
}
