package memrepo

import (
	"context"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/google/uuid"
)

type TransactionRepository struct {
	db db
}

func (r *TransactionRepository) BatchCreate(
	_ context.Context,
	transactions []repoargs.TransactionCreate,
	fn repoargs.BatchExecQueryRow,
) {
	_ = r.db.write(func(s *state) error {
		for i, t := range transactions {
			s.transactions = append(s.transactions, domain.Transaction{
				ID:          uuid.New(),
				UserID:      t.UserID,
				Amount:      t.Amount,
				Category:    t.Category,
				Description: t.Description,
				CreatedAt:   t.CreatedAt,
			})
			if fn != nil {
				fn(i, nil)
			}
		}
		return nil
	})
}

func (r *TransactionRepository) ListByUser(_ context.Context, userID int64, limit uint) ([]domain.Transaction, error) {
	var res []domain.Transaction
	err := r.db.read(func(s *state) error {
		for i := len(s.transactions) - 1; i >= 0; i-- {
			if limit > 0 && uint(len(res)) >= limit {
				break
			}
			if s.transactions[i].UserID == userID {
				res = append(res, s.transactions[i])
			}
		}
		return nil
	})
	return res, err
}

func (r *TransactionRepository) SumByUser(_ context.Context, userID int64) (int64, error) {
	var sum int64
	err := r.db.read(func(s *state) error {
		for _, t := range s.transactions {
			if t.UserID == userID {
				sum += t.Amount
			}
		}
		return nil
	})
	return sum, err
}

type PaymentRepository struct {
	db db
}

func (r *PaymentRepository) Create(_ context.Context, args repoargs.PaymentCreate) (*domain.ExternalPayment, error) {
	var payment domain.ExternalPayment
	err := r.db.write(func(s *state) error {
		if _, ok := s.payments[args.PaymentID]; ok {
			return duplicateErr("creating payment %s", args.PaymentID)
		}
		payment = domain.ExternalPayment{
			PaymentID: args.PaymentID,
			UserID:    args.UserID,
			Units:     args.Units,
			Amount:    args.Amount,
			Currency:  args.Currency,
			CreatedAt: args.CreatedAt,
		}
		s.payments[args.PaymentID] = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Find(_ context.Context, paymentID string) (*domain.ExternalPayment, error) {
	var payment domain.ExternalPayment
	err := r.db.read(func(s *state) error {
		p, ok := s.payments[paymentID]
		if !ok {
			return notFoundErr("finding payment %s", paymentID)
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
