package record

// Roles served by a dashboard
const (
	RoleSupplier = "supplier"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleDriver   = "driver"
)

// Identity is the authenticated user returned by the login endpoint and
// held by the session store.
type Identity struct {
	UserID   string `json:"user_id" validate:"required"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role" validate:"required"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

func Roles() []string {
	return []string{RoleSupplier, RoleManager, RoleAdmin, RoleCustomer, RoleDriver}
}
