package memrepo

import (
	"context"

	"github.com/fsdevblog/wish-ledger/internal/domain"
)

type ShopRepository struct {
	db db
}

func (r *ShopRepository) Find(_ context.Context, day string) (*domain.ShopSlot, error) {
	var slot domain.ShopSlot
	err := r.db.read(func(s *state) error {
		stored, ok := s.shop[day]
		if !ok {
			return notFoundErr("finding shop slot %s", day)
		}
		slot = stored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *ShopRepository) CreateIfAbsent(_ context.Context, slot domain.ShopSlot) (*domain.ShopSlot, bool, error) {
	var stored domain.ShopSlot
	var created bool
	err := r.db.write(func(s *state) error {
		if existing, ok := s.shop[slot.Day]; ok {
			stored = existing
			return nil
		}
		s.shop[slot.Day] = slot
		stored, created = slot, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &stored, created, nil
}

func (r *ShopRepository) Delete(_ context.Context, day string) error {
	return r.db.write(func(s *state) error {
		delete(s.shop, day)
		return nil
	})
}
