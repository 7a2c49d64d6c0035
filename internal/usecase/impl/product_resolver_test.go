package impl

import (
	"context"
	"testing"

	"pedido/internal/domain/entity"
	"pedido/internal/domain/repository"
	mockRepo "pedido/internal/mocks/repository"
	"pedido/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductResolver_IDHitSkipsNameSearch(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	resolver := newProductResolver(productRepo)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Pizza Calabresa", Price: 45}

	productRepo.EXPECT().FindAvailableByID(ctx, product.ID).Return(product, nil)

	got, err := resolver.Resolve(ctx, product.ID.String())
	require.NoError(t, err)
	assert.Equal(t, product, got)
	productRepo.AssertNotCalled(t, "FindFirstAvailableByName", mock.Anything, mock.Anything)
}

func TestProductResolver_IDMissFallsThroughToName(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	resolver := newProductResolver(productRepo)

	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().FindAvailableByID(ctx, id).Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().FindFirstAvailableByName(ctx, id.String()).Return(nil, repository.ErrProductNotFound)

	_, err := resolver.Resolve(ctx, id.String())
	assert.ErrorIs(t, err, ErrProductUnresolved)
}

func TestProductResolver_ShortReferenceNeverTriesID(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	resolver := newProductResolver(productRepo)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Calabresa"}

	productRepo.EXPECT().FindFirstAvailableByName(ctx, "calabresa").Return(product, nil)

	got, err := resolver.Resolve(ctx, "calabresa")
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductResolver_StripsQualifiers(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	resolver := newProductResolver(productRepo)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Calabresa"}

	productRepo.EXPECT().FindFirstAvailableByName(ctx, "Pizza Grande Calabresa").Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().FindFirstAvailableByName(ctx, "calabresa").Return(product, nil)

	got, err := resolver.Resolve(ctx, "Pizza Grande Calabresa")
	require.NoError(t, err)
	assert.Equal(t, "Calabresa", got.Name)
}

func TestProductResolver_WordFallback(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	resolver := newProductResolver(productRepo)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Frango com Catupiry"}

	productRepo.EXPECT().FindFirstAvailableByName(ctx, "meia frango catupiry especial").Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().FindFirstAvailableByName(ctx, "frango catupiry especial").Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().FindFirstAvailableByName(ctx, "frango").Return(product, nil)

	got, err := resolver.Resolve(ctx, "meia frango catupiry especial")
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductResolver_ShortWordsAreNotSearchedAlone(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	resolver := newProductResolver(productRepo)

	ctx := context.Background()

	productRepo.EXPECT().FindFirstAvailableByName(ctx, "pão de queijo").Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().FindFirstAvailableByName(ctx, "pão queijo").Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().FindFirstAvailableByName(ctx, "queijo").Return(nil, repository.ErrProductNotFound)

	_, err := resolver.Resolve(ctx, "pão de queijo")
	assert.ErrorIs(t, err, ErrProductUnresolved)
	productRepo.AssertNotCalled(t, "FindFirstAvailableByName", ctx, "pão")
}

func TestProductResolver_RepositoryErrorStopsResolution(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	resolver := newProductResolver(productRepo)

	ctx := context.Background()

	productRepo.EXPECT().FindFirstAvailableByName(ctx, "calabresa").Return(nil, errors.New("connection reset"))

	_, err := resolver.Resolve(ctx, "calabresa")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductUnresolved)
}

func TestProductResolver_ResolveItems(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	resolver := newProductResolver(productRepo)

	ctx := context.Background()
	calabresa := &entity.Product{ID: uuid.New(), Name: "Calabresa", Price: 45.9}
	refri := &entity.Product{ID: uuid.New(), Name: "Guaraná 2L", Price: 12}

	productRepo.EXPECT().FindFirstAvailableByName(ctx, "calabresa").Return(calabresa, nil)
	productRepo.EXPECT().FindFirstAvailableByName(ctx, "guaraná").Return(refri, nil)
	productRepo.EXPECT().FindFirstAvailableByName(ctx, "lasanha").Return(nil, repository.ErrProductNotFound)

	items, subtotal, notFound, err := resolver.ResolveItems(ctx, []usecase.OrderLineInput{
		{ProductRef: "calabresa", Quantity: 2, Modifiers: []string{"sem cebola"}},
		{ProductRef: "guaraná"},
		{ProductRef: "lasanha", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, calabresa.ID, items[0].ProductID)
	assert.Equal(t, "Calabresa", items[0].ProductName)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, []string{"sem cebola"}, items[0].Modifiers)
	assert.Equal(t, 1, items[1].Quantity, "missing quantity defaults to one")
	assert.NotEqual(t, uuid.Nil, items[1].ID)

	assert.Equal(t, 103.8, subtotal)
	assert.Equal(t, []string{"lasanha"}, notFound)
}
