package entities

import "time"

const (
	FieldCreatedAt = "createdAt"

	UserStatusActive = "active"
	UserRoleUser     = "user"
)

// ApplyUserDefaults fills status, role and createdAt when the client left
// them out. Every other field is kept as submitted.
func ApplyUserDefaults(user Document, now time.Time) Document {
	if _, ok := user[FieldStatus]; !ok {
		user[FieldStatus] = UserStatusActive
	}
	if _, ok := user[FieldRole]; !ok {
		user[FieldRole] = UserRoleUser
	}
	if _, ok := user[FieldCreatedAt]; !ok {
		user[FieldCreatedAt] = now
	}
	return user
}
