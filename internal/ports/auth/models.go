package auth

type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleVendor
}

// Claims es el principal autenticado: identidad y rol, no autorización.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}

func (c Claims) IsVendor() bool { return c.Role == RoleVendor }
