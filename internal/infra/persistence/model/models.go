package model

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&CustomerModel{},
		&ProductModel{},
		&DeliveryZoneModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ChatMessageModel{},
		&SettingsModel{},
		&PushSubscriptionModel{},
	}
}
