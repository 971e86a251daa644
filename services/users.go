package services

import (
	"context"

	"patidestek/db"
	"patidestek/inout"
	"patidestek/model"
	"patidestek/pkg/apperr"
	"patidestek/pkg/cache"
)

type UserService struct{}

// List returns every account, oldest first. Admin only.
func (s *UserService) List() ([]inout.UserView, error) {
	var users []model.User
	if err := db.Dao.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	views := make([]inout.UserView, len(users))
	for i := range users {
		views[i] = inout.NewUserView(&users[i])
	}
	return views, nil
}

// SetRole changes a user's role and drops the cached gate snapshot so the
// change is visible on the user's next request.
func (s *UserService) SetRole(ctx context.Context, id int, role string) (*inout.UserView, error) {
	if !model.ValidRole(role) {
		return nil, apperr.Validation("unknown role %q", role)
	}

	var user model.User
	if err := db.Dao.First(&user, id).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	user.Role = role
	if err := db.Dao.Save(&user).Error; err != nil {
		return nil, err
	}

	cache.InvalidateUserState(ctx, user.Id)
	view := inout.NewUserView(&user)
	return &view, nil
}

// SetBanned flips the ban flag. Unbanning restores content-mutating access
// immediately because the gate snapshot is invalidated here.
func (s *UserService) SetBanned(ctx context.Context, id int, banned bool) (*inout.UserView, error) {
	var user model.User
	if err := db.Dao.First(&user, id).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	user.IsBanned = banned
	if err := db.Dao.Save(&user).Error; err != nil {
		return nil, err
	}

	cache.InvalidateUserState(ctx, user.Id)
	view := inout.NewUserView(&user)
	return &view, nil
}
