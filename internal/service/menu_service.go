package service

import (
	"context"

	"steakhouse/storefront/internal/model"
)

type MenuService interface {
	List(ctx context.Context) []model.MenuItem
	Get(ctx context.Context, id int) (*model.MenuItem, error)
}

type menuService struct {
	items []model.MenuItem
}

func NewMenuService(items []model.MenuItem) MenuService {
	return &menuService{items: items}
}

func (s *menuService) List(_ context.Context) []model.MenuItem {
	out := make([]model.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *menuService) Get(_ context.Context, id int) (*model.MenuItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrMenuItemNotFound
}
