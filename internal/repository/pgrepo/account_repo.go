package pgrepo

import (
	"context"
	"errors"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const accountColumns = "user_id, balance, last_daily_claim, last_bonus_claim, created_at, updated_at"

type AccountRepository struct {
	conn uow.DBTX
}

func NewAccountRepository(conn uow.DBTX) *AccountRepository {
	return &AccountRepository{conn: conn}
}

func (r *AccountRepository) Create(ctx context.Context, args repoargs.AccountCreate) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO accounts (user_id, balance, created_at, updated_at) VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING `+accountColumns,
		args.UserID, args.Balance, args.CreatedAt,
	)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, duplicateErr("creating account %d", args.UserID)
		}
		return nil, convertErr(err, "creating account %d", args.UserID)
	}
	return account, nil
}

func (r *AccountRepository) Find(ctx context.Context, userID int64) (*domain.Account, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE user_id = $1`, userID)
	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account %d", userID)
	}
	return account, nil
}

func (r *AccountRepository) FindForUpdate(ctx context.Context, userIDs ...int64) ([]domain.Account, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE user_id = ANY($1) ORDER BY user_id FOR UPDATE`,
		userIDs,
	)
	if err != nil {
		return nil, convertErr(err, "locking accounts %v", userIDs)
	}
	return collectAccounts(rows, "locking accounts")
}

func (r *AccountRepository) FindAllForUpdate(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY user_id FOR UPDATE`)
	if err != nil {
		return nil, convertErr(err, "locking all accounts")
	}
	return collectAccounts(rows, "locking all accounts")
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, userID int64, balance int64, at time.Time) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE accounts SET balance = $2, updated_at = $3 WHERE user_id = $1`,
		userID, balance, at,
	)
	if err != nil {
		return convertErr(err, "updating balance of account %d", userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating balance of account %d", userID)
	}
	return nil
}

func (r *AccountRepository) StampClaim(ctx context.Context, userID int64, kind domain.ClaimKind, at time.Time) error {
	query := `UPDATE accounts SET last_daily_claim = $2, updated_at = $2 WHERE user_id = $1`
	if kind == domain.ClaimBonus {
		query = `UPDATE accounts SET last_bonus_claim = $2, updated_at = $2 WHERE user_id = $1`
	}
	tag, err := r.conn.Exec(ctx, query, userID, at)
	if err != nil {
		return convertErr(err, "stamping %s claim of account %d", kind, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "stamping %s claim of account %d", kind, userID)
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.UserID, &a.Balance, &a.LastDailyClaim, &a.LastBonusClaim, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}

func collectAccounts(rows pgx.Rows, msg string) ([]domain.Account, error) {
	defer rows.Close()
	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, convertErr(err, "%s", msg)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	return accounts, nil
}
