package constants

const (
	// ContextKeyUserID is the gin context key holding the authenticated user's ID.
	ContextKeyUserID = "user_id"
	// ContextKeyRole is the gin context key holding the authenticated user's role.
	ContextKeyRole = "user_role"

	MinPasswordLength = 8

	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// RecentLimit is the row cap for the dashboard recent-users/recent-tasks feeds.
	RecentLimit = 5
)
