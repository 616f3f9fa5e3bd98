package record

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderInTransit  OrderStatus = "In Transit"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// DeliveryStatus represents the lifecycle state of a delivery
type DeliveryStatus string

const (
	DeliveryPending        DeliveryStatus = "Pending"
	DeliveryPickedUp       DeliveryStatus = "Picked Up"
	DeliveryInTransit      DeliveryStatus = "In Transit"
	DeliveryOutForDelivery DeliveryStatus = "Out for Delivery"
	DeliveryDelivered      DeliveryStatus = "Delivered"
	DeliveryCancelled      DeliveryStatus = "Cancelled"
)

// AvailabilityStatus is shared by drivers and vehicles. Anything other
// than Available is an unavailable variant.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "Available"
	StatusOnDuty      AvailabilityStatus = "On Duty"
	StatusOffDuty     AvailabilityStatus = "Off Duty"
	StatusInUse       AvailabilityStatus = "In Use"
	StatusMaintenance AvailabilityStatus = "Maintenance"
)

func (s AvailabilityStatus) IsAvailable() bool {
	return s == StatusAvailable
}

// IsActive reports whether the delivery is on the road.
func (s DeliveryStatus) IsActive() bool {
	switch s {
	case DeliveryPickedUp, DeliveryInTransit, DeliveryOutForDelivery:
		return true
	}
	return false
}

func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderInTransit, OrderDelivered, OrderCancelled}
}

func DeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{
		DeliveryPending,
		DeliveryPickedUp,
		DeliveryInTransit,
		DeliveryOutForDelivery,
		DeliveryDelivered,
		DeliveryCancelled,
	}
}

func AvailabilityStatuses() []AvailabilityStatus {
	return []AvailabilityStatus{StatusAvailable, StatusOnDuty, StatusOffDuty, StatusInUse, StatusMaintenance}
}
