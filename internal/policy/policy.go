// Package policy is the access-control core: pure decisions over a caller's
// role and location. It performs no I/O and holds no state, so the same
// checks can be evaluated anywhere; the service layer is the authoritative
// enforcement point. Anything not explicitly allowed here is denied.
package policy

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleMember  Role = "Member"
)

type Location string

const (
	LocationIndia   Location = "India"
	LocationAmerica Location = "America"
	LocationWakanda Location = "Wakanda"
)

func ValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

func ValidLocation(location string) bool {
	switch Location(location) {
	case LocationIndia, LocationAmerica, LocationWakanda:
		return true
	}
	return false
}

// CanAccessCartAndPayment gates order placement and payment-method updates.
// Admins and Managers always pass; Members pass only from India.
func CanAccessCartAndPayment(role Role, location Location) bool {
	switch role {
	case RoleAdmin, RoleManager:
		return true
	case RoleMember:
		return location == LocationIndia
	}
	return false
}

func CanManageCatalog(role Role) bool {
	return role == RoleAdmin || role == RoleManager
}

func CanManageOrderStatus(role Role) bool {
	return role == RoleAdmin || role == RoleManager
}

// Scope bounds which orders a caller may list or mutate. Either All is true,
// or OwnerID names the only user whose orders are visible.
type Scope struct {
	All     bool
	OwnerID uint
}

// OrderVisibility returns the caller's order scope: everything for Admins and
// Managers, only their own orders for Members and any unknown role.
func OrderVisibility(role Role, userID uint) Scope {
	if role == RoleAdmin || role == RoleManager {
		return Scope{All: true}
	}
	return Scope{OwnerID: userID}
}
