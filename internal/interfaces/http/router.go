package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	apponboarding "github.com/jhoicas/Farmacia-api/internal/application/onboarding"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	TenantUC     *usecase.TenantUseCase
	BranchUC     *usecase.BranchUseCase
	ProductUC    *usecase.ProductUseCase
	UserUC       *usecase.UserUseCase
	InventoryUC  *inventory.UseCase
	OnboardingUC *apponboarding.StatusUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Navegación permitida según el rol del token (solo requiere autenticación,
	// no aplica alcance de tenant porque no toca datos).
	authGroup.Get("/navigation", AuthMiddleware(deps.JWTSecret), authHandler.Navigation)

	// Rutas de plataforma: solo PLATFORM_ADMIN, sin alcance de tenant.
	platform := api.Group("/platform", AuthMiddleware(deps.JWTSecret), RequirePlatformAdmin())
	tenantHandler := NewTenantHandler(deps.TenantUC)
	platform.Post("/tenants", tenantHandler.Create)
	platform.Get("/tenants", tenantHandler.List)
	platform.Put("/tenants/:id/payment-tier", tenantHandler.SetPaymentTier)
	platform.Put("/tenants/:id/status", tenantHandler.SetStatus)

	// Rutas protegidas: token válido + alcance de tenant fijado en el contexto.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), TenantScopeMiddleware())

	// Branches (ADMIN y MANAGER)
	branches := protected.Group("/branches", RequireAccess(authz.ResourceBranches))
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)

	// Products (inventario, accesible para todos los roles operativos)
	products := protected.Group("/products", RequireAccess(authz.ResourceInventory))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Inventory levels (protegido)
	invGroup := protected.Group("/inventory", RequireAccess(authz.ResourceInventory))
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Put("/levels", inventoryHandler.SetLevel)
	invGroup.Get("/branches/:branchId", inventoryHandler.ListByBranch)

	// Users (solo ADMIN del tenant)
	users := protected.Group("/users", RequireAccess(authz.ResourceUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)

	// Onboarding (cualquier rol con acceso al dashboard)
	onboarding := protected.Group("/onboarding", RequireAccess(authz.ResourceDashboard))
	onboardingHandler := NewOnboardingHandler(deps.OnboardingUC)
	onboarding.Get("/status", onboardingHandler.Status)
}
