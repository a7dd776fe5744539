// Copyright (c) 2026 Vow Directory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level carried by a verified token.
type UserRole string

const (
	// Full moderation access to the vendor table
	RoleAdmin UserRole = "admin"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
// Unknown roles rank below every known one.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	default:
		return 0
	}
}
