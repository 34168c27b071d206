package memrepo

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
)

type OwnershipRepository struct {
	db db
}

func (r *OwnershipRepository) Grant(_ context.Context, userID int64, itemID string, at time.Time) (*domain.OwnedItem, error) {
	var item domain.OwnedItem
	err := r.db.write(func(s *state) error {
		s.nextOwnedID++
		item = domain.OwnedItem{ID: s.nextOwnedID, UserID: userID, ItemID: itemID, AcquiredAt: at}
		s.owned = append(s.owned, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OwnershipRepository) RevokeOne(_ context.Context, userID int64, itemID string) error {
	return r.db.write(func(s *state) error {
		i := firstOwned(s, userID, itemID)
		if i < 0 {
			return notFoundErr("revoking item %s from user %d", itemID, userID)
		}
		s.owned = slices.Delete(s.owned, i, i+1)
		return nil
	})
}

func (r *OwnershipRepository) MoveOne(
	_ context.Context,
	fromID, toID int64,
	itemID string,
	at time.Time,
) (*domain.OwnedItem, error) {
	var item domain.OwnedItem
	err := r.db.write(func(s *state) error {
		i := firstOwned(s, fromID, itemID)
		if i < 0 {
			return notFoundErr("moving item %s from user %d", itemID, fromID)
		}
		s.owned[i].UserID = toID
		s.owned[i].AcquiredAt = at
		item = s.owned[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OwnershipRepository) ListByUser(_ context.Context, userID int64) ([]domain.OwnedItem, error) {
	var res []domain.OwnedItem
	err := r.db.read(func(s *state) error {
		for _, o := range s.owned {
			if o.UserID == userID {
				res = append(res, o)
			}
		}
		return nil
	})
	slices.SortFunc(res, func(a, b domain.OwnedItem) int { return cmp.Compare(a.ID, b.ID) })
	return res, err
}

func (r *OwnershipRepository) Count(_ context.Context, userID int64, itemID string) (int64, error) {
	var count int64
	err := r.db.read(func(s *state) error {
		for _, o := range s.owned {
			if o.UserID == userID && o.ItemID == itemID {
				count++
			}
		}
		return nil
	})
	return count, err
}

// firstOwned индекс самой старой единицы карточки у пользователя или -1.
func firstOwned(s *state, userID int64, itemID string) int {
	found := -1
	for i, o := range s.owned {
		if o.UserID == userID && o.ItemID == itemID && (found < 0 || o.ID < s.owned[found].ID) {
			found = i
		}
	}
	return found
}

type CatalogRepository struct {
	db db
}

func (r *CatalogRepository) Upsert(_ context.Context, items []domain.CatalogItem, fn repoargs.BatchExecQueryRow) {
	_ = r.db.write(func(s *state) error {
		for i, item := range items {
			s.catalog[item.ID] = item
			if fn != nil {
				fn(i, nil)
			}
		}
		return nil
	})
}

func (r *CatalogRepository) Find(_ context.Context, id string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := r.db.read(func(s *state) error {
		i, ok := s.catalog[id]
		if !ok {
			return notFoundErr("finding catalog item %s", id)
		}
		item = i
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) ListAll(_ context.Context) ([]domain.CatalogItem, error) {
	var res []domain.CatalogItem
	err := r.db.read(func(s *state) error {
		res = make([]domain.CatalogItem, 0, len(s.catalog))
		for _, item := range s.catalog {
			res = append(res, item)
		}
		return nil
	})
	slices.SortFunc(res, func(a, b domain.CatalogItem) int {
		if a.Rarity != b.Rarity {
			return cmp.Compare(a.Rarity, b.Rarity)
		}
		return strings.Compare(a.ID, b.ID)
	})
	return res, err
}
