//go:build unit

package commands_test

import (
	"context"
	"testing"

	"autofin/internal/domain/user"
	"autofin/internal/pkg/errs"
	"autofin/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("既存ユーザーは保存済みプロフィールを返す", func(t *testing.T) {
		users := newFakeUserRepo(user.User{
			ID:          "alice700",
			CreditScore: 700,
			DownPayment: 3000,
			BudgetMo:    500,
		})
		cmds := commands.NewUserCommands(users)

		u, err := cmds.Login(ctx, "alice700")
		require.NoError(t, err)
		assert.Equal(t, 3000.0, u.DownPayment)
		assert.Equal(t, 500.0, u.BudgetMo)
		assert.Equal(t, int32(700), u.CreditScore)
	})

	t.Run("新規ユーザーは既定値で登録される", func(t *testing.T) {
		users := newFakeUserRepo()
		cmds := commands.NewUserCommands(users)

		u, err := cmds.Login(ctx, "carol850")
		require.NoError(t, err)
		assert.Equal(t, int32(850), u.CreditScore, "信用スコアはIDの末尾3桁")
		assert.Equal(t, user.DefaultDownPayment, u.DownPayment)
		assert.Equal(t, user.DefaultBudgetMo, u.BudgetMo)

		exists, err := users.Exists(ctx, "carol850")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("末尾3桁が数字でないIDはエラー", func(t *testing.T) {
		cmds := commands.NewUserCommands(newFakeUserRepo())
		_, err := cmds.Login(ctx, "carol")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("空のIDとゲストIDはエラー", func(t *testing.T) {
		cmds := commands.NewUserCommands(newFakeUserRepo())

		_, err := cmds.Login(ctx, "")
		assert.ErrorIs(t, err, errs.ErrEmptyUserID)
		_, err = cmds.Login(ctx, commands.GuestUserID)
		assert.ErrorIs(t, err, errs.ErrEmptyUserID)
	})
}
