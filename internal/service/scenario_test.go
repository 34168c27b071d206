package service

import (
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestNewAccountDailyClaim(t *testing.T) {
	env := newTestEnv(t, Options{StartingBalance: 0})
	ctx := t.Context()
	now := env.clock.Now()

	account, err := env.services.Ledger.EnsureAccount(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(0), account.Balance)

	res, err := env.services.Reward.ClaimDaily(ctx, 1, now)
	require.NoError(t, err)
	require.Equal(t, int64(10), res.Balance)

	_, err = env.services.Reward.ClaimDaily(ctx, 1, now)
	require.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	require.Equal(t, int64(10), env.balance(t, 1))
}
