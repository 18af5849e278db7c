package dto

// OnboardingStepDTO metadatos de un paso de onboarding para la UI.
type OnboardingStepDTO struct {
	Step        string `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Route       string `json:"route"`
	Icon        string `json:"icon"`
}

// OnboardingStatusResponse estado de configuración del tenant, derivado en
// vivo de los conteos; nunca se persiste.
type OnboardingStatusResponse struct {
	CurrentStep  string              `json:"currentStep"`
	Steps        []OnboardingStepDTO `json:"steps"`
	HasBranches  bool                `json:"hasBranches"`
	HasUsers     bool                `json:"hasUsers"`
	HasProducts  bool                `json:"hasProducts"`
	HasInventory bool                `json:"hasInventory"`
}

// NavigationResponse rutas navegables para el rol autenticado (espejo
// consultivo del motor de autorización; el gate real es el middleware).
type NavigationResponse struct {
	Role   string     `json:"role"`
	Routes []NavRoute `json:"routes"`
}

// NavRoute entrada de navegación permitida.
type NavRoute struct {
	Tag   string `json:"tag"`
	Route string `json:"route"`
}
