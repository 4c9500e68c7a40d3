package router

import (
	"propbook/internal/handlers/booking"
	"propbook/internal/handlers/knowledge"
	"propbook/internal/handlers/validation"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Validation validation.Handler
	Booking    booking.Handler
	Knowledge  knowledge.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain at the root path.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Validation.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Knowledge.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
