package routes

import (
	"github.com/julienschmidt/httprouter"

	"shoaib/cart"
	"shoaib/checkout"
	"shoaib/products"
	"shoaib/ratelim"
)

// Handlers groups everything the storefront router serves.
type Handlers struct {
	Products *products.Handler
	Cart     *cart.Handler
	Checkout *checkout.Handler
	ImageDir string
}

func RoutesWrapper(router *httprouter.Router, h Handlers, rateLimiter *ratelim.RateLimiter) {
	AddHealthRoutes(router)
	AddStaticRoutes(router, h.ImageDir)
	AddProductRoutes(router, h.Products)
	AddCartRoutes(router, h.Cart)
	AddCheckoutRoutes(router, h.Checkout, rateLimiter)
}
