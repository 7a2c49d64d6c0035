package pubsub

import (
	"strconv"

	"pedido/internal/domain/service"
)

// eventAttributes builds the message attributes used for filtering and tracing
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"order_id":     event.OrderID,
		"order_number": strconv.FormatInt(event.OrderNumber, 10),
		"type":         string(event.Type),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
