package memrepo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/stretchr/testify/suite"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	u        *UnitOfWork
	accounts *AccountRepository
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.u = New()
	accounts, err := uow.GetRepositoryAs[*AccountRepository](s.u, uow.RepositoryName(repoargs.AccountRepoName))
	s.Require().NoError(err)
	s.accounts = accounts
}

func (s *UnitOfWorkTestSuite) TestCommit() {
	err := s.u.Do(s.T().Context(), func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[*AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if repoErr != nil {
			return repoErr
		}
		_, createErr := repo.Create(ctx, repoargs.AccountCreate{UserID: 1, Balance: 10, CreatedAt: time.Now()})
		return createErr
	})
	s.Require().NoError(err)

	account, findErr := s.accounts.Find(s.T().Context(), 1)
	s.Require().NoError(findErr)
	s.Equal(int64(10), account.Balance)
}

func (s *UnitOfWorkTestSuite) TestRollback() {
	_, err := s.accounts.Create(s.T().Context(), repoargs.AccountCreate{UserID: 1, Balance: 10})
	s.Require().NoError(err)

	errBoom := errors.New("boom")
	txErr := s.u.Do(s.T().Context(), func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[*AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
		if repoErr != nil {
			return repoErr
		}
		if updErr := repo.UpdateBalance(ctx, 1, 0, time.Now()); updErr != nil {
			return updErr
		}
		// внутри транзакции изменение видно.
		inTx, _ := repo.Find(ctx, 1)
		s.Equal(int64(0), inTx.Balance)
		// снаружи еще нет.
		outside, _ := s.accounts.Find(ctx, 1)
		s.Equal(int64(10), outside.Balance)
		return errBoom
	})
	s.ErrorIs(txErr, errBoom)

	account, findErr := s.accounts.Find(s.T().Context(), 1)
	s.Require().NoError(findErr)
	s.Equal(int64(10), account.Balance)
}

func (s *UnitOfWorkTestSuite) TestNotRegistered() {
	_, err := s.u.GetRepository("unknown")
	s.ErrorIs(err, uow.ErrRepositoryNotRegistered)

	_, typeErr := uow.GetRepositoryAs[*ShopRepository](s.u, uow.RepositoryName(repoargs.AccountRepoName))
	s.ErrorIs(typeErr, uow.ErrInvalidRepositoryType)
}

func (s *UnitOfWorkTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()
	called := false
	err := s.u.Do(ctx, func(context.Context, uow.TX) error {
		called = true
		return nil
	})
	s.ErrorIs(err, context.Canceled)
	s.False(called)
}

func (s *UnitOfWorkTestSuite) TestSerializedIncrements() {
	_, err := s.accounts.Create(s.T().Context(), repoargs.AccountCreate{UserID: 1})
	s.Require().NoError(err)

	const workers = 50
	wg := new(sync.WaitGroup)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_ = s.u.Do(context.Background(), func(ctx context.Context, tx uow.TX) error {
				repo, _ := uow.GetAs[*AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
				locked, _ := repo.FindForUpdate(ctx, 1)
				return repo.UpdateBalance(ctx, 1, locked[0].Balance+1, time.Now())
			})
		}()
	}
	wg.Wait()

	account, findErr := s.accounts.Find(s.T().Context(), 1)
	s.Require().NoError(findErr)
	s.Equal(int64(workers), account.Balance)
}

func (s *UnitOfWorkTestSuite) TestShopFirstWriterWins() {
	repo, err := uow.GetRepositoryAs[*ShopRepository](s.u, uow.RepositoryName(repoargs.ShopRepoName))
	s.Require().NoError(err)

	first, created, firstErr := repo.CreateIfAbsent(s.T().Context(), domain.ShopSlot{
		Day:   "2026-01-01",
		Items: []domain.ShopItem{{ItemID: "a", Price: 5}},
	})
	s.Require().NoError(firstErr)
	s.True(created)

	second, created, secondErr := repo.CreateIfAbsent(s.T().Context(), domain.ShopSlot{
		Day:   "2026-01-01",
		Items: []domain.ShopItem{{ItemID: "b", Price: 7}},
	})
	s.Require().NoError(secondErr)
	s.False(created)
	s.Equal(first.Items, second.Items)
}
