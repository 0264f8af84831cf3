package viewmodels

import (
	"context"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// UserHolder keeps the signed in user, normally the session
type UserHolder interface {
	SetUser(u models.User)
}

// Profile is the profile view-model
type Profile struct {
	api    ProfileAPI
	holder UserHolder
}

// NewProfile returns the profile view-model
func NewProfile(api ProfileAPI, holder UserHolder) *Profile {
	return &Profile{api: api, holder: holder}
}

// Get reads the profile and hands it to the session
func (p *Profile) Get(ctx context.Context) (models.User, error) {
	user, err := p.api.GetUserProfile(ctx)
	if err != nil {
		return models.User{}, err
	}
	p.holder.SetUser(user)
	return user, nil
}

// Update patches the profile and returns it as re-read from the API
func (p *Profile) Update(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	if err := p.api.UpdateProfile(ctx, update); err != nil {
		return models.User{}, err
	}
	return p.Get(ctx)
}
