package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-api/internal/application/auth"
	"github.com/tu-usuario/inventario-api/internal/application/ledger"
	"github.com/tu-usuario/inventario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SupplierUC *usecase.SupplierUseCase
	LedgerUC   *ledger.UseCase
	ActivityUC *usecase.ActivityUseCase
	AuthUC     *auth.AuthUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/inventory/:inventoryId", productHandler.ListByInventory)
	products.Get("/product", productHandler.Get)
	products.Post("/", productHandler.Create)
	products.Patch("/update", productHandler.Update)
	products.Delete("/delete", productHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/inventory/:inventoryId", supplierHandler.ListByInventory)
	suppliers.Get("/products/:supplierId", supplierHandler.ProductsBySupplier)
	suppliers.Patch("/update", supplierHandler.Update)

	// Transactions (ledger). La ruta comodín /:transactionId va al final para
	// no capturar /inventory/... ni /stats/...
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	transactions.Get("/inventory/:inventoryId", transactionHandler.ListByInventory)
	transactions.Get("/stats/:inventoryId", transactionHandler.Stats)
	transactions.Post("/", transactionHandler.Create)
	transactions.Patch("/:transactionId/status", transactionHandler.UpdateStatus)
	transactions.Get("/:transactionId", transactionHandler.Get)

	// Activity feed (respuestas crudas, sin envoltura)
	activities := api.Group("/activities")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activities.Get("/", activityHandler.Recent)
	activities.Post("/", activityHandler.Record)
}
