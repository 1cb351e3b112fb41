package services

import (
	"context"

	"github.com/dmitrijs2005/gophforum/internal/client/session"
	"github.com/dmitrijs2005/gophforum/internal/common"
	"github.com/dmitrijs2005/gophforum/internal/models"
)

const msgLoginForProfile = "Please log in to edit your profile."

// Profile edits the signed-in user's bio and subscription.
type Profile struct {
	session *session.Session
}

func NewProfile(s *session.Session) *Profile {
	return &Profile{session: s}
}

// DisplayBio returns the bio to show, falling back to models.DefaultBio.
func DisplayBio(u *models.User) string {
	if u == nil || u.Bio == "" {
		return models.DefaultBio
	}
	return u.Bio
}

func (p *Profile) UpdateBio(ctx context.Context, bio string) error {
	if !p.session.Update(ctx, func(u *models.User) { u.Bio = bio }) {
		return common.NewValidationError(msgLoginForProfile)
	}
	return nil
}

// ToggleSubscribe flips the subscription flag and returns the new value.
func (p *Profile) ToggleSubscribe(ctx context.Context) (bool, error) {
	var now bool
	ok := p.session.Update(ctx, func(u *models.User) {
		u.Subscribed = !u.Subscribed
		now = u.Subscribed
	})
	if !ok {
		return false, common.NewValidationError(msgLoginForProfile)
	}
	return now, nil
}
