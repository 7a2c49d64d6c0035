package usecase

import (
	"context"

	"pedido/internal/domain/entity"
)

// MenuCategory groups available products
type MenuCategory struct {
	Name     string            `json:"name"`
	Products []*entity.Product `json:"products"`
}

// Menu is the available catalog grouped by category
type Menu struct {
	Categories []MenuCategory `json:"categories"`
}

// MenuUsecase defines the menu read operation
type MenuUsecase interface {
	GetMenu(ctx context.Context) (*Menu, error)
}
