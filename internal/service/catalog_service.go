package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
)

var ErrInvalidCatalogItem = errors.New("invalid catalog item")

type CatalogService struct {
	uow     uow.UOW
	catalog CatalogRepository
}

func NewCatalogService(u uow.UOW) (*CatalogService, error) {
	catalog, err := repoOf[CatalogRepository](u, repoargs.CatalogRepoName)
	if err != nil {
		return nil, err
	}
	return &CatalogService{uow: u, catalog: catalog}, nil
}

// Upsert добавляет или обновляет карточки каталога одной транзакцией.
func (s *CatalogService) Upsert(ctx context.Context, items []domain.CatalogItem) error {
	for _, item := range items {
		if item.ID == "" || item.Name == "" || !item.Rarity.IsValid() {
			return fmt.Errorf("%w: %+v", ErrInvalidCatalogItem, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		catalog, err := repoFrom[CatalogRepository](tx, repoargs.CatalogRepoName)
		if err != nil {
			return err
		}
		var upsertErr error
		catalog.Upsert(c, items, func(_ int, err error) {
			if err != nil {
				upsertErr = err
			}
		})
		return upsertErr
	})
	if txErr != nil {
		return fmt.Errorf("upsert catalog: %w", txErr)
	}
	return nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.CatalogItem, error) {
	item, err := s.catalog.Find(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("get catalog item %s: %w", id, err)
	}
	return item, nil
}

func (s *CatalogService) List(ctx context.Context) ([]domain.CatalogItem, error) {
	items, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return items, nil
}
