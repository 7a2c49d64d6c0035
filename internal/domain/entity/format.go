package entity

import "strconv"

func formatOrderNumber(n int64) string {
	return "#" + strconv.FormatInt(n, 10)
}

// DisplayNumber returns the order number as shown to customers, e.g. "#42".
func (o *Order) DisplayNumber() string {
	return formatOrderNumber(o.OrderNumber)
}
