package service

import (
	"fmt"

	"github.com/fsdevblog/wish-ledger/pkg/uow"
)

type AppServices struct {
	Ledger     *LedgerService
	Reward     *RewardService
	Catalog    *CatalogService
	Collection *CollectionService
	Shop       *ShopService
	Market     *MarketService
}

func Factory(unitOfWork uow.UOW, opts Options) (*AppServices, error) {
	ledger, ledgerErr := NewLedgerService(unitOfWork, opts)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %w", ledgerErr)
	}

	reward, rewardErr := NewRewardService(unitOfWork, opts)
	if rewardErr != nil {
		return nil, fmt.Errorf("service factory: %w", rewardErr)
	}

	catalog, catalogErr := NewCatalogService(unitOfWork)
	if catalogErr != nil {
		return nil, fmt.Errorf("service factory: %w", catalogErr)
	}

	collection, collectionErr := NewCollectionService(unitOfWork, opts)
	if collectionErr != nil {
		return nil, fmt.Errorf("service factory: %w", collectionErr)
	}

	shop, shopErr := NewShopService(unitOfWork, opts)
	if shopErr != nil {
		return nil, fmt.Errorf("service factory: %w", shopErr)
	}

	market, marketErr := NewMarketService(unitOfWork, opts)
	if marketErr != nil {
		return nil, fmt.Errorf("service factory: %w", marketErr)
	}

	return &AppServices{
		Ledger:     ledger,
		Reward:     reward,
		Catalog:    catalog,
		Collection: collection,
		Shop:       shop,
		Market:     market,
	}, nil
}
