package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	RegistrationService RegistrationService
	SearchService       SearchService
	ReviewService       ReviewService
}
