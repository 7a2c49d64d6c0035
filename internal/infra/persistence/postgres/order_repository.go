package postgres

import (
	"context"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// MaxOrderNumber returns the highest order number, or 0 when there are no orders.
func (repo *orderRepository) MaxOrderNumber(ctx context.Context) (int64, error) {
	var maxNumber int64

	// A lagging replica would hand out a number that is already taken
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.OrderModel{}).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&maxNumber).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read max order number")
	}

	return maxNumber, nil
}

// CreateOrder persists the order row without its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderNumber
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("order violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateOrderItems persists the line items of an existing order.
func (repo *orderRepository) CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, fromOrderItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for idx, itemM := range itemModels {
		items[idx].ID = itemM.ID
	}

	return nil
}

// DeleteOrderItems removes every line item of an order.
func (repo *orderRepository) DeleteOrderItems(ctx context.Context, orderID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindOrderByNumber retrieves an order with its items by its sequential number.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, number int64) (*entity.Order, error) {
	return repo.findOne(ctx, "order_number = ?", number)
}

func (repo *orderRepository) findOne(ctx context.Context, query string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel

	// Orders are read back right after checkout and by the worker on order.created
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where(query, arg).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateOrderStatus sets the status of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateOrderTotals rewrites subtotal and total after an item edit.
func (repo *orderRepository) UpdateOrderTotals(ctx context.Context, id uuid.UUID, subtotal, total float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"subtotal": subtotal, "total": total})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order totals")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for idx := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[idx]))
	}

	return &entity.Order{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		Subtotal:        data.Subtotal,
		DeliveryFee:     data.DeliveryFee,
		Total:           data.Total,
		PaymentMethod:   data.PaymentMethod,
		ChangeFor:       data.ChangeFor,
		DeliveryType:    entity.DeliveryType(data.DeliveryType),
		ZoneName:        data.ZoneName,
		Status:          entity.OrderStatus(data.Status),
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		CustomerID:      data.CustomerID,
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		Subtotal:        data.Subtotal,
		DeliveryFee:     data.DeliveryFee,
		Total:           data.Total,
		PaymentMethod:   data.PaymentMethod,
		ChangeFor:       data.ChangeFor,
		DeliveryType:    string(data.DeliveryType),
		ZoneName:        data.ZoneName,
		Status:          string(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		Price:       data.Price,
		Modifiers:   []string(data.Modifiers),
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		Price:       data.Price,
		Modifiers:   datatypes.JSONSlice[string](data.Modifiers),
	}
}
