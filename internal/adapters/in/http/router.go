package httpin

import (
	"log"
	"net/http"

	"tiendapos/internal/adapters/in/http/handlers"
	"tiendapos/internal/adapters/in/http/middleware"
	"tiendapos/internal/application/query"
	"tiendapos/internal/application/usecase"
)

// RouterDeps collects the usecases (and the auth middleware) injected from main.
type RouterDeps struct {
	CatalogUC   *usecase.CatalogUsecase
	CartUC      *usecase.CartUsecase
	CheckoutUC  *usecase.CheckoutUsecase
	SaleUC      *usecase.SaleUsecase
	UserUC      *usecase.UserUsecase
	DashboardQ  *query.DashboardQuery

	// Auth wraps every mounted route. When nil (local runs without a
	// Firebase project) routes are mounted unprotected and a warning is
	// logged once.
	Auth *middleware.AuthMiddleware
}

// NewRouter sets up HTTP routing for all endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on, never behind auth)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if deps.Auth == nil {
		log.Printf("[router] WARN: auth middleware not configured; mounting routes unprotected")
	}
	protect := func(h http.Handler) http.Handler {
		if deps.Auth == nil {
			return h
		}
		return deps.Auth.Handler(h)
	}

	// ServeMux redirects /products to /products/ on its own, so each
	// prefix is mounted both ways to keep non-slash calls a single hop.
	mount := func(prefix string, h http.Handler) {
		wrapped := protect(h)
		mux.Handle(prefix, wrapped)
		mux.Handle(prefix+"/", wrapped)
	}

	if deps.CatalogUC != nil {
		mount("/products", handlers.NewProductHandler(deps.CatalogUC))
		mount("/categories", handlers.NewCategoryHandler(deps.CatalogUC))
	}

	if deps.CartUC != nil {
		mount("/cart", handlers.NewCartHandler(deps.CartUC))
	}

	if deps.CheckoutUC != nil && deps.CartUC != nil {
		mount("/checkout", handlers.NewCheckoutHandler(deps.CheckoutUC, deps.CartUC))
	}

	if deps.SaleUC != nil {
		mount("/sales", handlers.NewSaleHandler(deps.SaleUC))
	}

	if deps.DashboardQ != nil {
		mount("/dashboard", handlers.NewDashboardHandler(deps.DashboardQ))
	}

	if deps.UserUC != nil {
		mount("/users", handlers.NewUserHandler(deps.UserUC))
	}

	return mux
}
