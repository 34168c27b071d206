package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
)

type RewardService struct {
	uow      uow.UOW
	opts     Options
	accounts AccountRepository
}

func NewRewardService(u uow.UOW, opts Options) (*RewardService, error) {
	accounts, err := repoOf[AccountRepository](u, repoargs.AccountRepoName)
	if err != nil {
		return nil, err
	}
	return &RewardService{
		uow:      u,
		opts:     opts.withDefaults(),
		accounts: accounts,
	}, nil
}

type ClaimResult struct {
	Kind        domain.ClaimKind
	Amount      int64
	Balance     int64
	NextClaimAt time.Time
}

// cooldownKind поле отметки, по которому считается откат. При общем откате оба вида наград пишут в одно поле.
func (r *RewardService) cooldownKind(kind domain.ClaimKind) domain.ClaimKind {
	if r.opts.SharedRewardCooldown {
		return domain.ClaimDaily
	}
	return kind
}

// nextClaim время, с которого доступна следующая награда. Нулевое время - доступна сразу.
func (r *RewardService) nextClaim(account *domain.Account, kind domain.ClaimKind) time.Time {
	last := account.LastClaim(r.cooldownKind(kind))
	if last == nil {
		return time.Time{}
	}
	return last.Add(rewardCooldown)
}

// CanClaim true, если награды еще не было или с последней прошло не меньше 24 часов. Второе значение - время,
// когда награда станет доступна. Состояние не меняет.
func (r *RewardService) CanClaim(
	ctx context.Context,
	userID int64,
	kind domain.ClaimKind,
	now time.Time,
) (bool, time.Time, error) {
	account, err := r.accounts.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return true, now, nil
		}
		return false, time.Time{}, fmt.Errorf("can claim: %w", err)
	}
	next := r.nextClaim(account, kind)
	if next.IsZero() || !now.Before(next) {
		return true, now, nil
	}
	return false, next, nil
}

// ClaimDaily начисляет ежедневную награду. Проверка отката, начисление и отметка выполняются под блокировкой
// строки счета в одной транзакции, поэтому параллельные вызовы не получат награду дважды.
func (r *RewardService) ClaimDaily(ctx context.Context, userID int64, now time.Time) (*ClaimResult, error) {
	return r.claim(ctx, userID, domain.ClaimDaily, r.opts.DailyReward, now)
}

// ClaimBonus бросок кубика: сумма равномерно из [BonusMin, BonusMax].
func (r *RewardService) ClaimBonus(ctx context.Context, userID int64, now time.Time) (*ClaimResult, error) {
	span := r.opts.BonusMax - r.opts.BonusMin + 1
	amount := r.opts.BonusMin + int64(r.opts.Rand.IntN(int(span)))
	return r.claim(ctx, userID, domain.ClaimBonus, amount, now)
}

func (r *RewardService) claim(
	ctx context.Context,
	userID int64,
	kind domain.ClaimKind,
	amount int64,
	now time.Time,
) (*ClaimResult, error) {
	category := domain.CategoryReward
	if kind == domain.ClaimBonus {
		category = domain.CategoryBonus
	}

	var res *ClaimResult
	txErr := r.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if _, _, err := ensureAccount(c, tx, userID, r.opts.StartingBalance, now); err != nil {
			return err
		}
		accounts, err := repoFrom[AccountRepository](tx, repoargs.AccountRepoName)
		if err != nil {
			return err
		}
		locked, lockErr := accounts.FindForUpdate(c, userID)
		if lockErr != nil {
			return fmt.Errorf("locking account: %w", lockErr)
		}
		if len(locked) == 0 {
			return domain.ErrAccountNotFound
		}

		if next := r.nextClaim(&locked[0], kind); !next.IsZero() && now.Before(next) {
			return domain.NewClaimCooldownError(kind, next)
		}

		balances, postErr := post(c, tx, now, posting{
			UserID:      userID,
			Delta:       amount,
			Category:    category,
			Description: fmt.Sprintf("%s reward", kind),
		})
		if postErr != nil {
			return postErr
		}
		if stampErr := accounts.StampClaim(c, userID, r.cooldownKind(kind), now); stampErr != nil {
			return fmt.Errorf("stamping claim: %w", stampErr)
		}

		res = &ClaimResult{
			Kind:        kind,
			Amount:      amount,
			Balance:     balances[userID],
			NextClaimAt: now.Add(rewardCooldown),
		}
		return nil
	})
	if txErr != nil {
		var cooldownErr *domain.ClaimCooldownError
		if errors.As(txErr, &cooldownErr) {
			return nil, cooldownErr
		}
		return nil, fmt.Errorf("claim %s reward for user %d: %w", kind, userID, txErr)
	}
	return res, nil
}
