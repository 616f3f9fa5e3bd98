package dashboard

import (
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/view"
)

// adminView has one tab per collection and loads a tab's list only when
// the tab is shown.
func adminView(_ *record.Identity, src Source) view.Config {
	roleCategories := make([]view.Category, 0, len(record.Roles()))
	for _, role := range record.Roles() {
		roleCategories = append(roleCategories, view.Category{Name: role, Statuses: []string{role}})
	}

	users := view.NewList(view.ListConfig[record.User]{
		Name:   ListUsers,
		Source: src.Users,
		Key:    func(u record.User) string { return u.UserID },
		Fields: func(u record.User) []string {
			return []string{u.Username, u.Name, u.Role}
		},
		Status:     func(u record.User) string { return u.Role },
		Categories: roleCategories,
		Columns: []view.Column[record.User]{
			col("User ID", func(u record.User) string { return u.UserID }),
			col("Username", func(u record.User) string { return u.Username }),
			col("Name", func(u record.User) string { return u.Name }),
			col("Role", func(u record.User) string { return u.Role }),
			col("Email", func(u record.User) string { return u.Email }),
			col("Phone", func(u record.User) string { return u.Phone }),
		},
	})

	suppliers := view.NewList(view.ListConfig[record.Supplier]{
		Name:   ListSuppliers,
		Source: src.Suppliers,
		Key:    func(s record.Supplier) string { return s.SupplierID },
		Fields: func(s record.Supplier) []string {
			return []string{s.SupplierID, s.SupplierName}
		},
		Columns: []view.Column[record.Supplier]{
			col("Supplier ID", func(s record.Supplier) string { return s.SupplierID }),
			col("Name", func(s record.Supplier) string { return s.SupplierName }),
			col("Contact", func(s record.Supplier) string { return s.ContactPerson }),
			col("Email", func(s record.Supplier) string { return s.Email }),
			col("Phone", func(s record.Supplier) string { return s.Phone }),
			col("Address", func(s record.Supplier) string { return s.Address }),
		},
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
		Panels: []view.Panel{users, suppliers, drivers, vehicles},
		Tabs: []view.Tab{
			{Name: ListUsers, List: ListUsers},
			{Name: ListSuppliers, List: ListSuppliers},
			{Name: ListDrivers, List: ListDrivers},
			{Name: ListVehicles, List: ListVehicles},
		},
		Lazy: true,
	}
}
