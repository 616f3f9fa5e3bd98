package dashboard

import (
	"slices"

	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/view"
)

func col[T any](header string, value func(T) string) view.Column[T] {
	return view.Column[T]{Header: header, Value: value}
}

func statuses[S ~string](values ...S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// one category per order status, in lifecycle order
func orderCategories() []view.Category {
	var cats []view.Category
	for _, s := range record.OrderStatuses() {
		cats = append(cats, view.Category{Name: string(s), Statuses: statuses(s)})
	}
	return cats
}

func deliveryCategories(only ...record.DeliveryStatus) []view.Category {
	var cats []view.Category
	for _, s := range record.DeliveryStatuses() {
		if len(only) > 0 && !slices.Contains(only, s) {
			continue
		}
		cats = append(cats, view.Category{Name: string(s), Statuses: statuses(s)})
	}
	return cats
}

// where keeps the values accepted by keep, in their original order.
func where[S ~string](values []S, keep func(S) bool) []S {
	var out []S
	for _, v := range values {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// availabilityCategories splits drivers and vehicles into available and
// everything else, including statuses the API adds later.
func availabilityCategories() []view.Category {
	available := where(record.AvailabilityStatuses(), record.AvailabilityStatus.IsAvailable)
	return []view.Category{
		{Name: "Available", Statuses: statuses(available...)},
		{Name: "Unavailable", Fallback: true},
	}
}

func deliveryColumns() []view.Column[record.Delivery] {
	return []view.Column[record.Delivery]{
		col("Delivery ID", func(d record.Delivery) string { return d.DeliveryID }),
		col("Order ID", func(d record.Delivery) string { return d.OrderID }),
		col("Pickup", func(d record.Delivery) string { return d.PickupLocation }),
		col("Destination", func(d record.Delivery) string { return d.DeliveryLocation }),
		col("Current Location", func(d record.Delivery) string { return d.CurrentLocation }),
		col("Status", func(d record.Delivery) string { return string(d.Status) }),
	}
}

func orderColumns() []view.Column[record.Order] {
	return []view.Column[record.Order]{
		col("Order ID", func(o record.Order) string { return o.OrderID }),
		col("Date", func(o record.Order) string { return o.OrderDate }),
		col("Delivery Address", func(o record.Order) string { return o.DeliveryAddress }),
		col("Amount", func(o record.Order) string { return record.FormatDecimal(o.TotalAmount) }),
		col("Payment", func(o record.Order) string { return o.PaymentMethod }),
		col("Status", func(o record.Order) string { return string(o.Status) }),
	}
}

func driverColumns() []view.Column[record.Driver] {
	return []view.Column[record.Driver]{
		col("Driver ID", func(d record.Driver) string { return d.DriverID }),
		col("Name", func(d record.Driver) string { return d.Name }),
		col("License", func(d record.Driver) string { return d.LicenseNumber }),
		col("Phone", func(d record.Driver) string { return d.Phone }),
		col("Status", func(d record.Driver) string { return string(d.Status) }),
	}
}

func vehicleColumns() []view.Column[record.Vehicle] {
	return []view.Column[record.Vehicle]{
		col("Vehicle ID", func(v record.Vehicle) string { return v.VehicleID }),
		col("Registration", func(v record.Vehicle) string { return v.RegistrationNumber }),
		col("Type", func(v record.Vehicle) string { return v.Type }),
		col("Model", func(v record.Vehicle) string { return v.Model }),
		col("Capacity", func(v record.Vehicle) string { return record.FormatDecimal(v.Capacity) }),
		col("Status", func(v record.Vehicle) string { return string(v.Status) }),
	}
}

func deliveryKey(d record.Delivery) string    { return d.DeliveryID }
func deliveryStatus(d record.Delivery) string { return string(d.Status) }
func orderKey(o record.Order) string          { return o.OrderID }
func orderStatus(o record.Order) string       { return string(o.Status) }
func driverStatus(d record.Driver) string     { return string(d.Status) }
func vehicleStatus(v record.Vehicle) string   { return string(v.Status) }
