package router

import (
	"net/http"
	"strings"

	"snack-depot/internal/handler"
	"snack-depot/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Note the deliberate asymmetry: catalog mutations check the admin
// secret inside the service, order mutations are open to the storefront.
func New(
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalog routes
	catalogRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/food-items" || r.URL.Path == "/api/food-items/" {
			switch r.Method {
			case http.MethodGet:
				catalogHandler.GetAll(w, r)
			case http.MethodPost:
				catalogHandler.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/food-items/") {
			switch r.Method {
			case http.MethodGet:
				catalogHandler.GetByID(w, r)
			case http.MethodPut:
				catalogHandler.Update(w, r)
			case http.MethodDelete:
				catalogHandler.Delete(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	mux.HandleFunc("/api/food-items", catalogRouteHandler)
	mux.HandleFunc("/api/food-items/", catalogRouteHandler)

	// Order routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/" {
			switch r.Method {
			case http.MethodGet:
				orderHandler.GetAll(w, r)
			case http.MethodPost:
				orderHandler.Create(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/orders/") {
			switch r.Method {
			case http.MethodGet:
				orderHandler.GetByID(w, r)
			case http.MethodPatch:
				orderHandler.UpdateStatus(w, r)
			case http.MethodDelete:
				orderHandler.Delete(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
