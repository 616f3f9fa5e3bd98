package dashboard

import (
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/view"
)

// Driver delivery categories
const (
	CategoryPending   = "Pending"
	CategoryActive    = "Active"
	CategoryCompleted = "Completed"
	CategoryCancelled = "Cancelled"
)

// Driver tabs
const (
	TabActive    = "active"
	TabPending   = "pending"
	TabCompleted = "completed"
)

func driverView(identity *record.Identity, src Source) view.Config {
	deliveries := view.NewList(view.ListConfig[record.Delivery]{
		Name:   ListDeliveries,
		Source: src.Deliveries,
		Owns: func(d record.Delivery, _ view.Keys) bool {
			return d.DriverID == identity.UserID
		},
		Key: deliveryKey,
		Fields: func(d record.Delivery) []string {
			return []string{d.DeliveryID, d.OrderID, d.DeliveryLocation, string(d.Status)}
		},
		Status: deliveryStatus,
		Categories: []view.Category{
			{Name: CategoryPending, Statuses: statuses(record.DeliveryPending)},
			{Name: CategoryActive, Statuses: statuses(where(record.DeliveryStatuses(), record.DeliveryStatus.IsActive)...)},
			{Name: CategoryCompleted, Statuses: statuses(record.DeliveryDelivered)},
			{Name: CategoryCancelled, Statuses: statuses(record.DeliveryCancelled)},
		},
		Columns: deliveryColumns(),
	})

	// the fleet is shared, so vehicles are not filtered by driver
	vehicles := view.NewList(view.ListConfig[record.Vehicle]{
		Name:   ListVehicles,
		Source: src.Vehicles,
		Key:    func(v record.Vehicle) string { return v.VehicleID },
		Fields: func(v record.Vehicle) []string {
			return []string{v.VehicleID, v.RegistrationNumber}
		},
		Status:     vehicleStatus,
		Categories: availabilityCategories(),
		Columns:    vehicleColumns(),
	})

	return view.Config{
		Panels: []view.Panel{deliveries, vehicles},
		Tabs: []view.Tab{
			{Name: TabActive, List: ListDeliveries, Category: CategoryActive},
			{Name: TabPending, List: ListDeliveries, Category: CategoryPending},
			{Name: TabCompleted, List: ListDeliveries, Category: CategoryCompleted},
		},
	}
}
