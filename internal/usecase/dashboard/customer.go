package dashboard

import (
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/view"
)

// customerView shows the customer's orders and the deliveries fulfilling
// them. Orders are applied first so deliveries can follow their ids.
func customerView(identity *record.Identity, src Source) view.Config {
	orders := view.NewList(view.ListConfig[record.Order]{
		Name:   ListOrders,
		Source: src.Orders,
		Owns: func(o record.Order, _ view.Keys) bool {
			return o.CustomerID == identity.UserID
		},
		Key: orderKey,
		Fields: func(o record.Order) []string {
			return []string{o.OrderID, string(o.Status), o.DeliveryAddress}
		},
		Status:     orderStatus,
		Categories: orderCategories(),
		Columns:    orderColumns(),
	})

	deliveries := view.NewList(view.ListConfig[record.Delivery]{
		Name:   ListDeliveries,
		Source: src.Deliveries,
		Owns: func(d record.Delivery, keys view.Keys) bool {
			return keys.Has(ListOrders, d.OrderID)
		},
		Key: deliveryKey,
		Fields: func(d record.Delivery) []string {
			return []string{d.DeliveryID, d.OrderID, string(d.Status)}
		},
		Status:     deliveryStatus,
		Categories: deliveryCategories(),
		Columns:    deliveryColumns(),
	})

	return view.Config{
		Panels: []view.Panel{orders, deliveries},
		Tabs: []view.Tab{
			{Name: ListOrders, List: ListOrders},
			{Name: ListDeliveries, List: ListDeliveries},
		},
	}
}
