package memrepo

import (
	"context"

	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
)

type repositoryFactory func(db) uow.Repository

// UnitOfWork реализует uow.UOW. Do работает с копией состояния и публикует её только при успехе fn,
// поэтому ошибка откатывает все изменения единицы работы.
type UnitOfWork struct {
	store        *Store
	repositories map[uow.RepositoryName]repositoryFactory
}

// New создает хранилище и регистрирует в нем все репозитории.
func New() *UnitOfWork {
	return NewUnitOfWork(NewStore())
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{
		store: store,
		repositories: map[uow.RepositoryName]repositoryFactory{
			uow.RepositoryName(repoargs.AccountRepoName):     func(d db) uow.Repository { return &AccountRepository{db: d} },
			uow.RepositoryName(repoargs.TransactionRepoName): func(d db) uow.Repository { return &TransactionRepository{db: d} },
			uow.RepositoryName(repoargs.OwnershipRepoName):   func(d db) uow.Repository { return &OwnershipRepository{db: d} },
			uow.RepositoryName(repoargs.CatalogRepoName):     func(d db) uow.Repository { return &CatalogRepository{db: d} },
			uow.RepositoryName(repoargs.ShopRepoName):        func(d db) uow.Repository { return &ShopRepository{db: d} },
			uow.RepositoryName(repoargs.ListingRepoName):     func(d db) uow.Repository { return &ListingRepository{db: d} },
			uow.RepositoryName(repoargs.PaymentRepoName):     func(d db) uow.Repository { return &PaymentRepository{db: d} },
		},
	}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	u.store.mu.RLock()
	work := u.store.cur.clone()
	u.store.mu.RUnlock()

	if err := fn(ctx, &transaction{st: &txState{st: work}, repositories: u.repositories}); err != nil {
		return err
	}

	u.store.mu.Lock()
	u.store.cur = work
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	if factory, ok := u.repositories[name]; ok {
		return factory(u.store), nil
	}
	return nil, uow.ErrRepositoryNotRegistered
}

type transaction struct {
	st           *txState
	repositories map[uow.RepositoryName]repositoryFactory
}

func (t *transaction) Get(name uow.RepositoryName) (uow.Repository, error) {
	if factory, ok := t.repositories[name]; ok {
		return factory(t.st), nil
	}
	return nil, uow.ErrRepositoryNotRegistered
}
