package record

import "github.com/shopspring/decimal"

// User represents an account known to the SwiftTrack API
type User struct {
	UserID   string `json:"user_id" validate:"required"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Supplier maps 1:1 to a User with the supplier role
type Supplier struct {
	SupplierID    string `json:"supplier_id" validate:"required"`
	SupplierName  string `json:"supplier_name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// Driver maps 1:1 to a User with the driver role
type Driver struct {
	DriverID      string             `json:"driver_id" validate:"required"`
	Name          string             `json:"name"`
	LicenseNumber string             `json:"license_number"`
	Phone         string             `json:"phone"`
	Status        AvailabilityStatus `json:"status"`
}

// Vehicle is assigned to deliveries and is not owned by a single role
type Vehicle struct {
	VehicleID          string              `json:"vehicle_id" validate:"required"`
	RegistrationNumber string              `json:"registration_number"`
	Type               string              `json:"vehicle_type"`
	Model              string              `json:"model"`
	Capacity           decimal.NullDecimal `json:"capacity"`
	Status             AvailabilityStatus  `json:"status"`
}

// Order is owned by a customer
type Order struct {
	OrderID         string              `json:"order_id" validate:"required"`
	CustomerID      string              `json:"customer_id"`
	OrderDate       string              `json:"order_date"`
	DeliveryAddress string              `json:"delivery_address"`
	TotalAmount     decimal.NullDecimal `json:"total_amount"`
	PaymentMethod   string              `json:"payment_method"`
	Status          OrderStatus         `json:"status"`
}

// Delivery references an order, a supplier, a driver and a vehicle.
// The references are trusted as returned by the API.
type Delivery struct {
	DeliveryID       string         `json:"delivery_id" validate:"required"`
	OrderID          string         `json:"order_id"`
	SupplierID       string         `json:"supplier_id"`
	DriverID         string         `json:"driver_id"`
	VehicleID        string         `json:"vehicle_id"`
	PickupDate       string         `json:"pickup_date"`
	DeliveryDate     string         `json:"delivery_date"`
	PickupLocation   string         `json:"pickup_location"`
	DeliveryLocation string         `json:"delivery_location"`
	CurrentLocation  string         `json:"current_location"`
	Status           DeliveryStatus `json:"status"`
}

// FormatDecimal renders an optional amount, empty when the API sent none.
func FormatDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
