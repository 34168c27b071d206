package service

import (
	"errors"
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/memrepo"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	uowmocks "github.com/fsdevblog/wish-ledger/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type FactoryTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUOW  *uowmocks.MockUOW
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func (s *FactoryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
}

func (s *FactoryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *FactoryTestSuite) TestMissingRepository() {
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(nil, uow.ErrRepositoryNotRegistered)

	_, err := Factory(s.mockUOW, Options{})
	s.ErrorIs(err, uow.ErrRepositoryNotRegistered)
}

func (s *FactoryTestSuite) TestWrongRepositoryType() {
	s.mockUOW.EXPECT().GetRepository(gomock.Any()).Return("not a repository", nil).AnyTimes()

	_, err := Factory(s.mockUOW, Options{})
	s.ErrorIs(err, uow.ErrInvalidRepositoryType)
}

// TestStorageFailure ошибка единицы работы доходит до вызывающего и ничего не меняет.
func (s *FactoryTestSuite) TestStorageFailure() {
	store := memrepo.New()
	errBoom := errors.New("connection reset")

	s.mockUOW.EXPECT().GetRepository(gomock.Any()).
		DoAndReturn(store.GetRepository).AnyTimes()
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Return(errBoom).AnyTimes()

	services, err := Factory(s.mockUOW, Options{StartingBalance: 10})
	s.Require().NoError(err)
	ctx := s.T().Context()

	_, err = services.Ledger.EnsureAccount(ctx, 1)
	s.Require().ErrorIs(err, errBoom)

	_, err = services.Ledger.Transfer(ctx, 1, 2, 5)
	s.Require().ErrorIs(err, errBoom)

	_, err = services.Market.CreateListing(ctx, 1, "card_001", 5)
	s.Require().ErrorIs(err, errBoom)

	_, err = services.Ledger.GetBalance(ctx, 1)
	s.ErrorIs(err, domain.ErrAccountNotFound)
}
