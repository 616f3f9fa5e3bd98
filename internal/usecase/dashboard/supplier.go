package dashboard

import (
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/view"
)

// supplierView shows the deliveries the supplier ships.
func supplierView(identity *record.Identity, src Source) view.Config {
	deliveries := view.NewList(view.ListConfig[record.Delivery]{
		Name:   ListDeliveries,
		Source: src.Deliveries,
		Owns: func(d record.Delivery, _ view.Keys) bool {
			return d.SupplierID == identity.UserID
		},
		Key: deliveryKey,
		Fields: func(d record.Delivery) []string {
			return []string{d.DeliveryID, d.OrderID, string(d.Status)}
		},
		Status:     deliveryStatus,
		Categories: deliveryCategories(record.DeliveryPending, record.DeliveryInTransit, record.DeliveryDelivered),
		Columns:    deliveryColumns(),
	})

	return view.Config{Panels: []view.Panel{deliveries}}
}
