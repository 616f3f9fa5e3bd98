package dashboard

import (
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/view"
)

// managerView sees every delivery, order and driver.
func managerView(_ *record.Identity, src Source) view.Config {
	deliveries := view.NewList(view.ListConfig[record.Delivery]{
		Name:   ListDeliveries,
		Source: src.Deliveries,
		Key:    deliveryKey,
		Fields: func(d record.Delivery) []string {
			return []string{d.DeliveryID, d.OrderID, d.DriverID, string(d.Status)}
		},
		Status: deliveryStatus,
		Categories: deliveryCategories(
			record.DeliveryPending,
			record.DeliveryInTransit,
			record.DeliveryDelivered,
			record.DeliveryCancelled,
		),
		Columns: append(deliveryColumns(),
			col("Driver ID", func(d record.Delivery) string { return d.DriverID })),
	})

	orders := view.NewList(view.ListConfig[record.Order]{
		Name:   ListOrders,
		Source: src.Orders,
		Key:    orderKey,
		Fields: func(o record.Order) []string {
			return []string{o.OrderID, o.CustomerID, string(o.Status)}
		},
		Status:     orderStatus,
		Categories: orderCategories(),
		Columns:    orderColumns(),
	})

	drivers := view.NewList(view.ListConfig[record.Driver]{
		Name:   ListDrivers,
		Source: src.Drivers,
		Key:    func(d record.Driver) string { return d.DriverID },
		Fields: func(d record.Driver) []string {
			return []string{d.DriverID, d.Name}
		},
		Status:     driverStatus,
		Categories: availabilityCategories(),
		Columns:    driverColumns(),
	})

	return view.Config{Panels: []view.Panel{deliveries, orders, drivers}}
}
