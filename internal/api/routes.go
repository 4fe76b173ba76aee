package api

// Routes of the remote ILFC API, relative to the configured base URL.
// Path parameters are written as {name} and expanded by the client.
const (
	LoginRoute      = "/users/login"
	AdminLoginRoute = "/admin/login"
	RefreshRoute    = "/users/refresh"
	LogoutRoute     = "/users/logout"

	ItemsParent    = "/items/"
	ListItemsRoute = ItemsParent
	ItemRoute      = ItemsParent + "{id}"
	AdminItemRoute = "/admin/items"

	ListTagsRoute = "/tags/"
	AdminTags     = "/admin/tags"
	AdminTagRoute = AdminTags + "/{id}"

	AdminUsers              = "/admin/users"
	AdminUserRoute          = AdminUsers + "/{id}"
	AdminUserPasswordReset  = AdminUserRoute + "/password:reset"
	LockerParent            = "/admin/lockers/"
	LockerOpenRoute         = LockerParent + "{id}/open"
	LockerStatusRoute       = LockerParent + "{id}/status"
	LockerValidateCodeRoute = LockerParent + "{id}/codes/validate"
	LockerOpenLogsRoute     = LockerParent + "open-logs"

	PickupLogsRoute = "/admin/pickup-logs"
)
