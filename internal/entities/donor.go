package entities

import "time"

type Donor struct {
	ID        int64
	UserID    *int64
	Name      string
	Email     string
	Phone     string
	Address   string
	Postcode  string
	CreatedAt time.Time
}

type UserRole string

const (
	RoleDonor    UserRole = "donor"
	RoleAdmin    UserRole = "admin"
	RoleDriver   UserRole = "driver"
	RoleCustomer UserRole = "customer"
)

func (r UserRole) String() string {
	return string(r)
}

// Principal - личность вызывающего, разрешённая auth-middleware один раз на запрос.
type Principal struct {
	UserID  int64
	DonorID int64
	Role    UserRole
}
