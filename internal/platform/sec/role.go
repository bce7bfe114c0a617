// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"
	"strings"
)

// # User Roles

// Role is the authorization level granted to an account.
//
// Roles are ordered by privilege with the most privileged role having the
// smallest value: a caller satisfies a required role when its own value is
// less than or equal to the required one.
type Role int

const (
	// Unrestricted system access
	RoleAdmin Role = iota

	// Can publish and manage articles
	RoleEditor

	// Can preview unpublished content
	RoleContributor

	// Default role for registered readers
	RoleSubscriber
)

// roleUnset marks claims decoded without a role.
const roleUnset Role = -1

var roleNames = map[Role]string{
	RoleAdmin:       "admin",
	RoleEditor:      "editor",
	RoleContributor: "contributor",
	RoleSubscriber:  "subscriber",
}

// # Role Hierarchy

// AtLeast reports whether r grants at least the privileges of required.
func (r Role) AtLeast(required Role) bool {
	return r.Valid() && r <= required
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// String returns the persisted name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// LookupRole maps a role name to a [Role], reporting whether it is known.
func LookupRole(name string) (Role, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for role, roleName := range roleNames {
		if roleName == name {
			return role, true
		}
	}
	return roleUnset, false
}

// ParseRole maps a persisted role name back to a [Role]. Unknown names fall
// back to [RoleSubscriber], the least privileged role.
func ParseRole(name string) Role {
	if role, ok := LookupRole(name); ok {
		return role
	}
	return RoleSubscriber
}

// MarshalText stores roles by name in JSON and in token claims.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a role name. Unknown names are rejected.
func (r *Role) UnmarshalText(text []byte) error {
	role, ok := LookupRole(string(text))
	if !ok {
		return fmt.Errorf("sec: unknown role %q", text)
	}
	*r = role
	return nil
}
