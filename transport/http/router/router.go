package router

import (
	"tablebook/internal/handlers/reservation"
	"tablebook/internal/handlers/restaurant"
	"tablebook/internal/handlers/table"
	"tablebook/internal/handlers/waitlist"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Restaurant  restaurant.Handler
	Table       table.Handler
	Reservation reservation.Handler
	Waitlist    waitlist.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes nests every venue-scoped resource under /restaurants/{id},
// so each handler registers routes relative to its restaurant.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Route("/restaurants", func(restaurantGroup chi.Router) {
			r.DomainHandlers.Restaurant.Router(restaurantGroup)

			restaurantGroup.Route("/{id}", func(venueGroup chi.Router) {
				r.DomainHandlers.Restaurant.VenueRouter(venueGroup)
				r.DomainHandlers.Table.Router(venueGroup)
				r.DomainHandlers.Reservation.Router(venueGroup)
				r.DomainHandlers.Waitlist.Router(venueGroup)
			})
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
