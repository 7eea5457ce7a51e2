package httpx

import (
	"net/http"

	"plantcart/internal/cart"
	"plantcart/internal/catalog"
	"plantcart/internal/logger"
	"plantcart/internal/middleware"
	"plantcart/internal/order"
	"plantcart/internal/payment"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	cart     *cart.Store
	catalog  catalog.Lookup
	workflow *order.Workflow
	records  *order.RecordStore
	gateway  payment.Gateway
}

func New(c *cart.Store, lookup catalog.Lookup, wf *order.Workflow, records *order.RecordStore, gateway payment.Gateway) *Server {
	return &Server{
		cart:     c,
		catalog:  lookup,
		workflow: wf,
		records:  records,
		gateway:  gateway,
	}
}

func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimit)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/cart", s.getCart)
		r.Post("/cart/items", s.addCartItem)
		r.Put("/cart/items/{productID}", s.updateCartItem)
		r.Delete("/cart/items/{productID}", s.removeCartItem)

		r.Post("/checkout", s.submitCheckout)
		r.Post("/checkout/payment/retry", s.retryPayment)

		r.Get("/orders", s.listOrders)
		r.Get("/orders/{orderID}", s.getOrder)
	})

	r.Post("/webhook/payment", s.paymentCallback)

	return r
}
