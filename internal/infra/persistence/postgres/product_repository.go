package postgres

import (
	"context"
	"strings"

	"pedido/internal/domain/entity"
	"pedido/internal/domain/repository"
	"pedido/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindAvailableByID retrieves an available product by ID.
func (repo *productRepository) FindAvailableByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND is_available = ?", id, true).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindFirstAvailableByName returns the first available product whose name contains term.
func (repo *productRepository) FindFirstAvailableByName(ctx context.Context, term string) (*entity.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, repository.ErrProductNotFound
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("is_available = ? AND name ILIKE ?", true, "%"+likeEscaper.Replace(term)+"%").
		Order("name ASC").
		Limit(1).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products by name")
	}

	if len(productModels) == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(productModels[0]), nil
}

// ListAvailable returns every available product ordered by category then name.
func (repo *productRepository) ListAvailable(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("category ASC, name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
