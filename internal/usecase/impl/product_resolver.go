package impl

import (
	"context"
	"strings"
	"unicode/utf8"

	"pedido/internal/domain/entity"
	"pedido/internal/domain/repository"
	"pedido/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductUnresolved is returned when a reference matches no available product
var ErrProductUnresolved = errors.New("product reference unresolved")

const (
	// References longer than this are treated as product IDs first
	idShapedMinLength = 20
	// Words of this length or shorter are never searched on their own
	minFallbackWordLength = 3
)

// qualifierWords are size, half, and filler words customers add around a product name
var qualifierWords = map[string]struct{}{
	"pizza": {}, "grande": {}, "media": {}, "média": {}, "pequena": {}, "broto": {},
	"meia": {}, "inteira": {}, "tamanho": {}, "familia": {}, "família": {},
	"com": {}, "sem": {}, "de": {}, "da": {}, "do": {}, "e": {},
}

// productResolver maps free-text or ID references onto catalog products
type productResolver struct {
	productRepo repository.ProductRepository
}

func newProductResolver(productRepo repository.ProductRepository) *productResolver {
	return &productResolver{productRepo: productRepo}
}

// Resolve tries, in order: exact ID, name substring, name without qualifiers, then each
// significant word. The first hit wins.
func (r *productResolver) Resolve(ctx context.Context, ref string) (*entity.Product, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrProductUnresolved
	}

	if len(ref) > idShapedMinLength {
		if id, err := uuid.Parse(ref); err == nil {
			product, err := r.productRepo.FindAvailableByID(ctx, id)
			if err == nil {
				return product, nil
			}
			if !errors.Is(err, repository.ErrProductNotFound) {
				return nil, err
			}
		}
	}

	product, err := r.byName(ctx, ref)
	if product != nil || err != nil {
		return product, err
	}

	words := significantWords(ref)
	cleaned := strings.Join(words, " ")
	if cleaned != "" && cleaned != strings.ToLower(ref) {
		product, err = r.byName(ctx, cleaned)
		if product != nil || err != nil {
			return product, err
		}
	}

	for _, word := range words {
		if utf8.RuneCountInString(word) <= minFallbackWordLength {
			continue
		}
		product, err = r.byName(ctx, word)
		if product != nil || err != nil {
			return product, err
		}
	}

	return nil, ErrProductUnresolved
}

// byName returns (nil, nil) on a miss
func (r *productResolver) byName(ctx context.Context, term string) (*entity.Product, error) {
	product, err := r.productRepo.FindFirstAvailableByName(ctx, term)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ResolveItems resolves every line, snapshotting name and price. Unresolved references are
// returned in notFound as typed; the subtotal covers resolved lines only.
func (r *productResolver) ResolveItems(ctx context.Context, lines []usecase.OrderLineInput) (items []*entity.OrderItem, subtotal float64, notFound []string, err error) {
	for _, line := range lines {
		product, err := r.Resolve(ctx, line.ProductRef)
		if errors.Is(err, ErrProductUnresolved) {
			notFound = append(notFound, line.ProductRef)

			continue
		}
		if err != nil {
			return nil, 0, nil, err
		}

		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		item := &entity.OrderItem{
			ID:          uuid.New(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			Price:       product.Price,
			Modifiers:   line.Modifiers,
		}
		items = append(items, item)
		subtotal = entity.RoundCents(subtotal + item.LineTotal())
	}

	return items, subtotal, notFound, nil
}

func significantWords(term string) []string {
	fields := strings.Fields(strings.ToLower(term))
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if _, isQualifier := qualifierWords[field]; isQualifier {
			continue
		}
		words = append(words, field)
	}

	return words
}
