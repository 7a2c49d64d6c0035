package impl

import (
	"context"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/usecase"

	"go.uber.org/fx"
)

const uncategorized = "Outros"

type menuService struct {
	productRepo repository.ProductRepository
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{productRepo: params.ProductRepo}
}

// GetMenu keeps the repository order: categories appear in the order their first product does.
func (srv *menuService) GetMenu(ctx context.Context) (*usecase.Menu, error) {
	products, err := srv.productRepo.ListAvailable(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return groupMenu(products), nil
}

func groupMenu(products []*entity.Product) *usecase.Menu {
	menu := &usecase.Menu{Categories: []usecase.MenuCategory{}}
	index := make(map[string]int)

	for _, product := range products {
		name := product.Category
		if name == "" {
			name = uncategorized
		}

		i, ok := index[name]
		if !ok {
			i = len(menu.Categories)
			index[name] = i
			menu.Categories = append(menu.Categories, usecase.MenuCategory{Name: name})
		}
		menu.Categories[i].Products = append(menu.Categories[i].Products, product)
	}

	return menu
}
