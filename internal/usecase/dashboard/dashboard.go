package dashboard

import (
	"context"
	"fmt"

	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/navigation"
	"swifttrack-dashboard/internal/view"
	appErrors "swifttrack-dashboard/pkg/errors"
)

// Source is the part of the API client the dashboards read from.
type Source interface {
	Users(ctx context.Context) ([]record.User, error)
	Suppliers(ctx context.Context) ([]record.Supplier, error)
	Drivers(ctx context.Context) ([]record.Driver, error)
	Vehicles(ctx context.Context) ([]record.Vehicle, error)
	Orders(ctx context.Context) ([]record.Order, error)
	Deliveries(ctx context.Context) ([]record.Delivery, error)
}

// Names of the lists and tabs the dashboards expose
const (
	ListUsers      = "users"
	ListSuppliers  = "suppliers"
	ListDrivers    = "drivers"
	ListVehicles   = "vehicles"
	ListOrders     = "orders"
	ListDeliveries = "deliveries"
)

type builder func(identity *record.Identity, src Source) view.Config

var builders = map[string]builder{
	record.RoleSupplier: supplierView,
	record.RoleDriver:   driverView,
	record.RoleCustomer: customerView,
	record.RoleManager:  managerView,
	record.RoleAdmin:    adminView,
}

// New builds the unmounted view routed for identity. Nothing is fetched
// until the caller refreshes it.
func New(identity *record.Identity, src Source) (*view.View, error) {
	if identity == nil {
		return nil, appErrors.ErrNoSession
	}

	name := navigation.Resolve(identity)
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", appErrors.ErrUnknownView, name)
	}

	cfg := build(identity, src)
	cfg.Name = name
	return view.New(cfg)
}

// Views lists the view names that have a dashboard.
func Views() []string {
	return record.Roles()
}
