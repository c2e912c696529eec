package staff

// Role classifies the dashboard callers of the engine. Catalog writes are
// admin-only; quoting and committing are open to any billing-capable role.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RolePOS          Role = "pos"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleReceptionist, RolePOS:
		return true
	default:
		return false
	}
}

// CanManageCatalog reports whether the role may create or edit promotions.
func (r Role) CanManageCatalog() bool {
	return r == RoleAdmin
}
