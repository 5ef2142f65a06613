package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/venue-booking-api/internal/auth"
	"github.com/gdg-garage/venue-booking-api/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the API on r. Forwarded client addresses are only
// honored when trustProxy is set, i.e. when the service sits behind a proxy
// that overwrites them.
func RegisterRoutes(r *chi.Mux, logger *zap.Logger, trustProxy bool, sessionHandler *auth.SessionHandler, catalogHandler *CatalogHandler, bookingHandler *BookingHandler, checkoutHandler *CheckoutHandler) huma.API {
	r.Use(middleware.RequestID)
	if trustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	var api huma.API
	r.Group(func(r chi.Router) {
		r.Use(sessionHandler.Middleware)
		r.Use(logging.RequestLogger(logger))

		// Initialize Huma API
		config := huma.DefaultConfig("Venue Booking API", "1.0.0")
		config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			"sessionCookie": {
				Type: "apiKey",
				In:   "cookie",
				Name: auth.CookieName,
			},
		}
		config.Security = []map[string][]string{{"sessionCookie": {}}}
		api = humachi.New(r, config)

		huma.Get(api, "/catalog", catalogHandler.HandleCatalog)
		huma.Get(api, "/catalog/time-slots", catalogHandler.HandleTimeSlots)

		huma.Get(api, "/booking", bookingHandler.HandleGet)
		huma.Patch(api, "/booking/event-info", bookingHandler.HandleUpdateEventInfo)
		huma.Put(api, "/booking/menu/{itemId}", bookingHandler.HandleSetMenuQuantity)
		huma.Post(api, "/booking/menu/{itemId}/adjust", bookingHandler.HandleAdjustMenu)
		huma.Put(api, "/booking/beverage", bookingHandler.HandleSetBeverage)
		huma.Post(api, "/booking/step/next", bookingHandler.HandleNextStep)
		huma.Post(api, "/booking/step/previous", bookingHandler.HandlePreviousStep)
		huma.Put(api, "/booking/step", bookingHandler.HandleGoToStep)
		huma.Post(api, "/booking/reset", bookingHandler.HandleReset)

		huma.Get(api, "/booking/preview", bookingHandler.HandlePreview)
		huma.Get(api, "/booking/summary", bookingHandler.HandleSummary)
		huma.Get(api, "/booking/overview", bookingHandler.HandleOverview)
		huma.Get(api, "/booking/checkout/attributes", bookingHandler.HandleCheckoutAttributes)
		huma.Post(api, "/booking/checkout", checkoutHandler.HandleCheckout)
		huma.Get(api, "/booking/history", checkoutHandler.HandleHistory)
	})

	return api
}
