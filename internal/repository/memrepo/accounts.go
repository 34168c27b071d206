package memrepo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
)

type AccountRepository struct {
	db db
}

func (r *AccountRepository) Create(_ context.Context, args repoargs.AccountCreate) (*domain.Account, error) {
	var account domain.Account
	err := r.db.write(func(s *state) error {
		if _, ok := s.accounts[args.UserID]; ok {
			return duplicateErr("creating account %d", args.UserID)
		}
		account = domain.Account{
			UserID:    args.UserID,
			Balance:   args.Balance,
			CreatedAt: args.CreatedAt,
			UpdatedAt: args.CreatedAt,
		}
		s.accounts[args.UserID] = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Find(_ context.Context, userID int64) (*domain.Account, error) {
	var account domain.Account
	err := r.db.read(func(s *state) error {
		a, ok := s.accounts[userID]
		if !ok {
			return notFoundErr("finding account %d", userID)
		}
		account = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// FindForUpdate внутри единицы работы блокировка не нужна: транзакции хранилища выполняются по одной.
func (r *AccountRepository) FindForUpdate(_ context.Context, userIDs ...int64) ([]domain.Account, error) {
	ids := slices.Clone(userIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	var accounts = make([]domain.Account, 0, len(ids))
	err := r.db.read(func(s *state) error {
		for _, id := range ids {
			if a, ok := s.accounts[id]; ok {
				accounts = append(accounts, a)
			}
		}
		return nil
	})
	return accounts, err
}

func (r *AccountRepository) FindAllForUpdate(_ context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	err := r.db.read(func(s *state) error {
		accounts = make([]domain.Account, 0, len(s.accounts))
		for _, a := range s.accounts {
			accounts = append(accounts, a)
		}
		return nil
	})
	slices.SortFunc(accounts, func(a, b domain.Account) int {
		return cmp.Compare(a.UserID, b.UserID)
	})
	return accounts, err
}

func (r *AccountRepository) UpdateBalance(_ context.Context, userID int64, balance int64, at time.Time) error {
	return r.db.write(func(s *state) error {
		a, ok := s.accounts[userID]
		if !ok {
			return notFoundErr("updating balance of account %d", userID)
		}
		a.Balance = balance
		a.UpdatedAt = at
		s.accounts[userID] = a
		return nil
	})
}

func (r *AccountRepository) StampClaim(_ context.Context, userID int64, kind domain.ClaimKind, at time.Time) error {
	return r.db.write(func(s *state) error {
		a, ok := s.accounts[userID]
		if !ok {
			return notFoundErr("stamping claim of account %d", userID)
		}
		stamp := at
		if kind == domain.ClaimBonus {
			a.LastBonusClaim = &stamp
		} else {
			a.LastDailyClaim = &stamp
		}
		a.UpdatedAt = at
		s.accounts[userID] = a
		return nil
	})
}
