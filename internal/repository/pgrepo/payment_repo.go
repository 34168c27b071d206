package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = "payment_id, user_id, units, amount, currency, created_at"

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

func (r *PaymentRepository) Create(ctx context.Context, args repoargs.PaymentCreate) (*domain.ExternalPayment, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO external_payments (payment_id, user_id, units, amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (payment_id) DO NOTHING
		RETURNING `+paymentColumns,
		args.PaymentID, args.UserID, args.Units, args.Amount, args.Currency, args.CreatedAt,
	)
	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, duplicateErr("creating payment %s", args.PaymentID)
		}
		return nil, convertErr(err, "creating payment %s", args.PaymentID)
	}
	return payment, nil
}

func (r *PaymentRepository) Find(ctx context.Context, paymentID string) (*domain.ExternalPayment, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+paymentColumns+` FROM external_payments WHERE payment_id = $1`, paymentID)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment %s", paymentID)
	}
	return payment, nil
}

func scanPayment(row pgx.Row) (*domain.ExternalPayment, error) {
	var p domain.ExternalPayment
	if err := row.Scan(&p.PaymentID, &p.UserID, &p.Units, &p.Amount, &p.Currency, &p.CreatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}
