package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	RegistrationHandler *RegistrationHandler
	SearchHandler       *SearchHandler
	ReviewHandler       *ReviewHandler
	HealthHandler       *HealthHandler
}
