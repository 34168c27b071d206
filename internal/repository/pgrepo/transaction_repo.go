package pgrepo

import (
	"context"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// BatchCreate добавляет записи журнала одним батчем. Результат каждой вставки передается в fn.
func (r *TransactionRepository) BatchCreate(
	ctx context.Context,
	transactions []repoargs.TransactionCreate,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, t := range transactions {
		batch.Queue(
			`INSERT INTO transactions (id, user_id, amount, category, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), t.UserID, t.Amount, string(t.Category), t.Description, t.CreatedAt,
		)
	}
	br := r.conn.SendBatch(ctx, batch)
	defer func() {
		_ = br.Close()
	}()

	for i := range transactions {
		_, err := br.Exec()
		if fn != nil {
			fn(i, convertErr(err, "creating transaction for user %d", transactions[i].UserID))
		}
	}
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, amount, category, description, created_at
		FROM transactions WHERE user_id = $1 ORDER BY seq DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, int64(limit)) //nolint:gosec
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing transactions of user %d", userID)
	}
	defer rows.Close()

	var res []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var category string
		if scanErr := rows.Scan(&t.ID, &t.UserID, &t.Amount, &category, &t.Description, &t.CreatedAt); scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction of user %d", userID)
		}
		t.Category = domain.TransactionCategory(category)
		res = append(res, t)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing transactions of user %d", userID)
	}
	return res, nil
}

func (r *TransactionRepository) SumByUser(ctx context.Context, userID int64) (int64, error) {
	var sum int64
	err := r.conn.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::BIGINT FROM transactions WHERE user_id = $1`, userID,
	).Scan(&sum)
	if err != nil {
		return 0, convertErr(err, "summing transactions of user %d", userID)
	}
	return sum, nil
}
