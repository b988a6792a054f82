package commands

import (
	"context"

	"autofin/internal/domain/user"
	"autofin/internal/pkg/errs"
)

type UserCommands interface {
	Login(ctx context.Context, userID string) (*user.User, error)
}

type userCommandsImpl struct {
	users UserRepository
}

func NewUserCommands(users UserRepository) UserCommands {
	return &userCommandsImpl{users: users}
}

// Login returns the stored profile for a known user, or registers a new one
// with default search parameters and a credit score derived from the id.
func (u *userCommandsImpl) Login(ctx context.Context, userID string) (*user.User, error) {
	if userID == "" || userID == GuestUserID {
		return nil, errs.Mark(errs.New("login requires a user id"), errs.ErrEmptyUserID)
	}

	exists, err := u.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return u.users.FindByID(ctx, userID)
	}

	score, ok := user.CreditScoreFromID(userID)
	if !ok {
		return nil, errs.Mark(errs.New("user id must end in three digits"), errs.ErrInvalidUserID)
	}

	fresh := user.User{
		ID:          userID,
		CreditScore: score,
		DownPayment: user.DefaultDownPayment,
		BudgetMo:    user.DefaultBudgetMo,
	}
	if err := u.users.Create(ctx, fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}
