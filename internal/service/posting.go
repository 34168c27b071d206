package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
)

// posting одна проводка по счету.
type posting struct {
	UserID      int64
	Delta       int64
	Category    domain.TransactionCategory
	Description string
}

func repoFrom[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	repo, err := uow.GetAs[T](tx, uow.RepositoryName(name))
	if err != nil {
		return repo, fmt.Errorf("get %s repository: %w", name, err)
	}
	return repo, nil
}

func repoOf[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	repo, err := uow.GetRepositoryAs[T](u, uow.RepositoryName(name))
	if err != nil {
		return repo, fmt.Errorf("get %s repository: %w", name, err)
	}
	return repo, nil
}

// ensureAccount возвращает счет или создает его со стартовым балансом. Стартовое начисление попадает в журнал,
// чтобы баланс всегда совпадал с суммой записей.
func ensureAccount(
	ctx context.Context,
	tx uow.TX,
	userID int64,
	startingBalance int64,
	at time.Time,
) (*domain.Account, bool, error) {
	accounts, err := repoFrom[AccountRepository](tx, repoargs.AccountRepoName)
	if err != nil {
		return nil, false, err
	}

	account, createErr := accounts.Create(ctx, repoargs.AccountCreate{
		UserID:    userID,
		Balance:   startingBalance,
		CreatedAt: at,
	})
	if createErr != nil {
		if !errors.Is(createErr, domain.ErrDuplicateKey) {
			return nil, false, fmt.Errorf("creating account: %w", createErr)
		}
		existing, findErr := accounts.Find(ctx, userID)
		if findErr != nil {
			return nil, false, fmt.Errorf("finding account: %w", findErr)
		}
		return existing, false, nil
	}

	if startingBalance > 0 {
		if logErr := appendRecords(ctx, tx, at, []posting{{
			UserID:      userID,
			Delta:       startingBalance,
			Category:    domain.CategoryStartingGrant,
			Description: "starting balance",
		}}); logErr != nil {
			return nil, false, logErr
		}
	}
	return account, true, nil
}

// post применяет проводки внутри tx. Счета блокируются в порядке возрастания id. Если хоть один баланс уходит
// в минус, ничего не пишется и возвращается domain.ErrInsufficientFunds, при переполнении domain.ErrInvalidAmount.
// Возвращает новые балансы.
func post(ctx context.Context, tx uow.TX, at time.Time, postings ...posting) (map[int64]int64, error) {
	accounts, err := repoFrom[AccountRepository](tx, repoargs.AccountRepoName)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(postings))
	for _, p := range postings {
		ids = append(ids, p.UserID)
	}
	locked, lockErr := accounts.FindForUpdate(ctx, ids...)
	if lockErr != nil {
		return nil, fmt.Errorf("locking accounts: %w", lockErr)
	}

	balances := make(map[int64]int64, len(locked))
	for _, a := range locked {
		balances[a.UserID] = a.Balance
	}
	for _, p := range postings {
		balance, ok := balances[p.UserID]
		if !ok {
			return nil, fmt.Errorf("posting to user %d: %w", p.UserID, domain.ErrAccountNotFound)
		}
		if p.Delta > 0 && balance > math.MaxInt64-p.Delta {
			return nil, fmt.Errorf("posting %d to user %d overflows balance: %w", p.Delta, p.UserID, domain.ErrInvalidAmount)
		}
		if balance+p.Delta < 0 {
			return nil, fmt.Errorf("posting %d to user %d: %w", p.Delta, p.UserID, domain.ErrInsufficientFunds)
		}
		balances[p.UserID] = balance + p.Delta
	}

	for _, a := range locked {
		if balances[a.UserID] == a.Balance {
			continue
		}
		if updErr := accounts.UpdateBalance(ctx, a.UserID, balances[a.UserID], at); updErr != nil {
			return nil, fmt.Errorf("updating balance: %w", updErr)
		}
	}

	if logErr := appendRecords(ctx, tx, at, postings); logErr != nil {
		return nil, logErr
	}
	return balances, nil
}

// appendRecords пишет записи журнала батчем. Если ошибок несколько, вернется последняя.
func appendRecords(ctx context.Context, tx uow.TX, at time.Time, postings []posting) error {
	transactions, err := repoFrom[TransactionRepository](tx, repoargs.TransactionRepoName)
	if err != nil {
		return err
	}

	records := make([]repoargs.TransactionCreate, len(postings))
	for i, p := range postings {
		records[i] = repoargs.TransactionCreate{
			UserID:      p.UserID,
			Amount:      p.Delta,
			Category:    p.Category,
			Description: p.Description,
			CreatedAt:   at,
		}
	}

	var batchErr error
	transactions.BatchCreate(ctx, records, func(_ int, err error) {
		if err != nil {
			batchErr = err
		}
	})
	if batchErr != nil {
		return fmt.Errorf("appending transactions: %w", batchErr)
	}
	return nil
}
