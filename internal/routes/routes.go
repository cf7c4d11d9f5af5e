package routes

const (
	Health  = "/health"
	Metrics = "/metrics"

	AuthRegister = "/api/v1/auth/register"
	AuthLogin    = "/api/v1/auth/login"

	Properties     = "/api/v1/properties"
	PropertiesMine = "/api/v1/properties/mine"
	PropertyByID   = "/api/v1/properties/{id}"

	Favorites    = "/api/v1/favorites"
	FavoriteByID = "/api/v1/favorites/{id}"

	UsersMe          = "/api/v1/users/me"
	UsersAgentIntent = "/api/v1/users/me/agent-request"

	Plans           = "/api/v1/plans"
	SubscriptionsMe = "/api/v1/subscriptions/me"

	Notifications     = "/api/v1/notifications"
	NotificationsRead = "/api/v1/notifications/read"

	Provinces      = "/api/v1/locations/provinces"
	ProvinceCities = "/api/v1/locations/provinces/{id}/cities"
	SiteConfig     = "/api/v1/site-config"

	Uploads = "/api/v1/uploads"

	AdminAgentRequests     = "/api/v1/admin/agent-requests"
	AdminAgentRequestByID  = "/api/v1/admin/agent-requests/{id}"
	AdminAgents            = "/api/v1/admin/agents"
	AdminAgentActivation   = "/api/v1/admin/agents/{id}/activation"
	AdminAccountByID       = "/api/v1/admin/accounts/{id}"
	AdminAccountProperties = "/api/v1/admin/accounts/{id}/properties"
	AdminPlans             = "/api/v1/admin/plans"
	AdminPlanByID          = "/api/v1/admin/plans/{id}"
	AdminSubscriptions     = "/api/v1/admin/subscriptions"
)
