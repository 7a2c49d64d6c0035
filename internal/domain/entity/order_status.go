package entity

// OrderStatus is the order state machine:
// pending -> approved -> preparing -> ready -> out_for_delivery -> delivered, plus terminal cancelled.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusApproved       OrderStatus = "approved"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:        "Pendente",
	OrderStatusApproved:       "Aprovado",
	OrderStatusPreparing:      "Em preparo",
	OrderStatusReady:          "Pronto",
	OrderStatusOutForDelivery: "Saiu para entrega",
	OrderStatusDelivered:      "Entregue",
	OrderStatusCancelled:      "Cancelado",
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusLabels[s]

	return ok
}

// Label returns the user-visible name of the status.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

// IsTerminal reports whether no further transition is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether an order in s may move to next. Staff may step back
// or skip ahead between open statuses; delivered and cancelled orders stay put.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return next.IsValid() && next != s && !s.IsTerminal()
}

// CustomerMessage returns the message sent to the customer when the order enters this status.
// Only ready has distinct copy for pickup orders.
func (s OrderStatus) CustomerMessage(orderNumber int64, deliveryType DeliveryType) string {
	number := formatOrderNumber(orderNumber)

	switch s {
	case OrderStatusPending:
		return "Recebemos seu pedido " + number + "! Em instantes ele será confirmado."
	case OrderStatusApproved:
		return "Seu pedido " + number + " foi aprovado! ✅"
	case OrderStatusPreparing:
		return "Seu pedido " + number + " está sendo preparado! 👨‍🍳"
	case OrderStatusReady:
		if deliveryType == DeliveryTypePickup {
			return "Seu pedido " + number + " está pronto para retirada! Pode vir buscar. 🛍️"
		}

		return "Seu pedido " + number + " está pronto e logo sairá para entrega! 📦"
	case OrderStatusOutForDelivery:
		return "Seu pedido " + number + " saiu para entrega! O entregador está a caminho. 🛵"
	case OrderStatusDelivered:
		return "Seu pedido " + number + " foi entregue. Bom apetite! 😋"
	case OrderStatusCancelled:
		return "Seu pedido " + number + " foi cancelado. Qualquer dúvida, é só chamar."
	default:
		return "Seu pedido " + number + " foi atualizado para: " + s.Label()
	}
}
