package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/shopspring/decimal"
)

type LedgerService struct {
	uow          uow.UOW
	opts         Options
	accounts     AccountRepository
	transactions TransactionRepository
	payments     PaymentRepository
}

func NewLedgerService(u uow.UOW, opts Options) (*LedgerService, error) {
	accounts, err := repoOf[AccountRepository](u, repoargs.AccountRepoName)
	if err != nil {
		return nil, err
	}
	transactions, err := repoOf[TransactionRepository](u, repoargs.TransactionRepoName)
	if err != nil {
		return nil, err
	}
	payments, err := repoOf[PaymentRepository](u, repoargs.PaymentRepoName)
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		uow:          u,
		opts:         opts.withDefaults(),
		accounts:     accounts,
		transactions: transactions,
		payments:     payments,
	}, nil
}

// EnsureAccount возвращает счет пользователя, создавая его при первом обращении. Идемпотентна.
func (l *LedgerService) EnsureAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	if existing, err := l.accounts.Find(ctx, userID); err == nil {
		return existing, nil
	}

	var account *domain.Account
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		a, _, err := ensureAccount(c, tx, userID, l.opts.StartingBalance, l.opts.Clock())
		account = a
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("ensure account %d: %w", userID, txErr)
	}
	return account, nil
}

// GetBalance текущий баланс. Счет не создает: для неизвестного пользователя вернется domain.ErrAccountNotFound.
func (l *LedgerService) GetBalance(ctx context.Context, userID int64) (int64, error) {
	account, err := l.accounts.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, domain.ErrAccountNotFound
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return account.Balance, nil
}

type AdjustArgs struct {
	UserID      int64
	Delta       int64
	Category    domain.TransactionCategory
	Description string
}

type BalanceChange struct {
	UserID  int64
	Delta   int64
	Balance int64
}

// AdjustBalance применяет знаковую дельту к балансу и пишет запись журнала в той же транзакции.
// Ошибки: domain.ErrInvalidAmount для нулевой дельты, domain.ErrInsufficientFunds если баланс уйдет в минус.
func (l *LedgerService) AdjustBalance(ctx context.Context, args AdjustArgs) (*BalanceChange, error) {
	if args.Delta == 0 {
		return nil, domain.ErrInvalidAmount
	}
	if args.Category == "" {
		args.Category = domain.CategoryAdminGrant
	}

	var balance int64
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		now := l.opts.Clock()
		if _, _, err := ensureAccount(c, tx, args.UserID, l.opts.StartingBalance, now); err != nil {
			return err
		}
		balances, err := post(c, tx, now, posting{
			UserID:      args.UserID,
			Delta:       args.Delta,
			Category:    args.Category,
			Description: args.Description,
		})
		if err != nil {
			return err
		}
		balance = balances[args.UserID]
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("adjust balance of user %d: %w", args.UserID, txErr)
	}
	return &BalanceChange{UserID: args.UserID, Delta: args.Delta, Balance: balance}, nil
}

// AdminGrant начисление (или списание при отрицательной сумме) от администратора.
func (l *LedgerService) AdminGrant(ctx context.Context, userID int64, amount int64) (*BalanceChange, error) {
	return l.AdjustBalance(ctx, AdjustArgs{
		UserID:      userID,
		Delta:       amount,
		Category:    domain.CategoryAdminGrant,
		Description: "admin grant",
	})
}

type TransferResult struct {
	FromBalance int64
	ToBalance   int64
}

// Transfer переводит amount от fromID к toID. Получатель создается при необходимости.
// Обе проводки и обе записи журнала пишутся одной транзакцией.
func (l *LedgerService) Transfer(ctx context.Context, fromID, toID int64, amount int64) (*TransferResult, error) {
	if amount <= 0 {
		return nil, domain.ErrTransferAmount
	}
	if fromID == toID {
		return nil, domain.ErrInvalidTransfer
	}

	var res TransferResult
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		now := l.opts.Clock()
		if _, _, err := ensureAccount(c, tx, toID, l.opts.StartingBalance, now); err != nil {
			return err
		}
		balances, err := post(c, tx, now,
			posting{
				UserID:      fromID,
				Delta:       -amount,
				Category:    domain.CategoryTransferOut,
				Description: fmt.Sprintf("transfer to %d", toID),
			},
			posting{
				UserID:      toID,
				Delta:       amount,
				Category:    domain.CategoryTransferIn,
				Description: fmt.Sprintf("transfer from %d", fromID),
			},
		)
		if err != nil {
			return err
		}
		res = TransferResult{FromBalance: balances[fromID], ToBalance: balances[toID]}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAccountNotFound) {
			// отправителя нет, значит и средств у него нет.
			return nil, domain.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("transfer %d -> %d: %w", fromID, toID, txErr)
	}
	return &res, nil
}

// History записи журнала от новых к старым. limit == 0 означает лимит по умолчанию.
func (l *LedgerService) History(ctx context.Context, userID int64, limit uint) ([]domain.Transaction, error) {
	if limit == 0 {
		limit = l.opts.HistoryLimit
	}
	transactions, err := l.transactions.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("history of user %d: %w", userID, err)
	}
	return transactions, nil
}

type PaymentArgs struct {
	PaymentID string
	UserID    int64
	Units     int64
	Amount    decimal.Decimal
	Currency  string
}

// CreditExternalPayment зачисляет валюту за внешний платеж. Повторная доставка того же PaymentID не зачисляет
// повторно и возвращает *domain.DuplicatePaymentError.
func (l *LedgerService) CreditExternalPayment(ctx context.Context, args PaymentArgs) (*BalanceChange, error) {
	if args.Units <= 0 || args.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if args.PaymentID == "" {
		return nil, fmt.Errorf("empty payment id: %w", domain.ErrInvalidAmount)
	}

	var balance int64
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		now := l.opts.Clock()
		if _, _, err := ensureAccount(c, tx, args.UserID, l.opts.StartingBalance, now); err != nil {
			return err
		}
		payments, err := repoFrom[PaymentRepository](tx, repoargs.PaymentRepoName)
		if err != nil {
			return err
		}
		if _, createErr := payments.Create(c, repoargs.PaymentCreate{
			PaymentID: args.PaymentID,
			UserID:    args.UserID,
			Units:     args.Units,
			Amount:    args.Amount,
			Currency:  args.Currency,
			CreatedAt: now,
		}); createErr != nil {
			return createErr
		}

		balances, postErr := post(c, tx, now, posting{
			UserID:   args.UserID,
			Delta:    args.Units,
			Category: domain.CategoryExternalPurchase,
			Description: fmt.Sprintf("payment %s: %s %s",
				args.PaymentID, args.Amount.StringFixed(2), args.Currency),
		})
		if postErr != nil {
			return postErr
		}
		balance = balances[args.UserID]
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrDuplicateKey) {
			existing, findErr := l.payments.Find(ctx, args.PaymentID)
			if findErr != nil {
				return nil, fmt.Errorf("credit payment %s: %w", args.PaymentID, findErr)
			}
			return nil, domain.NewDuplicatePaymentError(existing)
		}
		return nil, fmt.Errorf("credit payment %s: %w", args.PaymentID, txErr)
	}
	return &BalanceChange{UserID: args.UserID, Delta: args.Units, Balance: balance}, nil
}

// ResetAllBalances обнуляет все положительные балансы одной транзакцией. Возвращает число затронутых счетов.
func (l *LedgerService) ResetAllBalances(ctx context.Context) (int, error) {
	var affected int
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accounts, err := repoFrom[AccountRepository](tx, repoargs.AccountRepoName)
		if err != nil {
			return err
		}
		all, lockErr := accounts.FindAllForUpdate(c)
		if lockErr != nil {
			return fmt.Errorf("locking accounts: %w", lockErr)
		}

		var postings []posting
		for _, a := range all {
			if a.Balance > 0 {
				postings = append(postings, posting{
					UserID:      a.UserID,
					Delta:       -a.Balance,
					Category:    domain.CategoryAdminReset,
					Description: "balance reset",
				})
			}
		}
		if len(postings) == 0 {
			return nil
		}
		if _, postErr := post(c, tx, l.opts.Clock(), postings...); postErr != nil {
			return postErr
		}
		affected = len(postings)
		return nil
	})
	if txErr != nil {
		return 0, fmt.Errorf("reset balances: %w", txErr)
	}
	return affected, nil
}

type AuditReport struct {
	UserID  int64
	Balance int64
	LogSum  int64
}

func (r *AuditReport) Consistent() bool {
	return r.Balance == r.LogSum
}

// Audit сверяет баланс с суммой записей журнала.
func (l *LedgerService) Audit(ctx context.Context, userID int64) (*AuditReport, error) {
	balance, err := l.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	sum, sumErr := l.transactions.SumByUser(ctx, userID)
	if sumErr != nil {
		return nil, fmt.Errorf("audit of user %d: %w", userID, sumErr)
	}
	return &AuditReport{UserID: userID, Balance: balance, LogSum: sum}, nil
}
