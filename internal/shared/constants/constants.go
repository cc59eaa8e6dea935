// Package constants holds shared table names and context keys.
package constants

const (
	TableCourses      = "courses"
	TableEntitlements = "user_entitlements"
	TableUsers        = "users"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

const (
	RoleDefault = "default"
	RoleAdmin   = "admin"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
