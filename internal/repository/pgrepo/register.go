package pgrepo

import (
	"fmt"

	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
)

// Register регистрирует фабрики всех репозиториев в единице работы.
func Register(u *uow.UnitOfWork) error {
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.AccountRepoName:     func(conn uow.DBTX) uow.Repository { return NewAccountRepository(conn) },
		repoargs.TransactionRepoName: func(conn uow.DBTX) uow.Repository { return NewTransactionRepository(conn) },
		repoargs.OwnershipRepoName:   func(conn uow.DBTX) uow.Repository { return NewOwnershipRepository(conn) },
		repoargs.CatalogRepoName:     func(conn uow.DBTX) uow.Repository { return NewCatalogRepository(conn) },
		repoargs.ShopRepoName:        func(conn uow.DBTX) uow.Repository { return NewShopRepository(conn) },
		repoargs.ListingRepoName:     func(conn uow.DBTX) uow.Repository { return NewListingRepository(conn) },
		repoargs.PaymentRepoName:     func(conn uow.DBTX) uow.Repository { return NewPaymentRepository(conn) },
	}
	for name, factory := range factories {
		if err := u.Register(uow.RepositoryName(name), factory); err != nil {
			return fmt.Errorf("register %s repository: %w", name, err)
		}
	}
	return nil
}
