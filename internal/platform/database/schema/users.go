// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UsersAccountTable represents the 'users.account' table.
type UsersAccountTable struct {
	Table        string
	ID           string
	Email        string
	Name         string
	Role         string
	PasswordHash string
	CreatedAt    string
}

var UsersAccount = UsersAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	Name:         "name",
	Role:         "role",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
}
