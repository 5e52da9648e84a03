package routes

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/julienschmidt/httprouter"

	"shoaib/cart"
	"shoaib/checkout"
	"shoaib/middleware"
	"shoaib/products"
	"shoaib/ratelim"
)

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func AddHealthRoutes(router *httprouter.Router) {
	router.GET("/health", Index)
}

func AddStaticRoutes(router *httprouter.Router, imageDir string) {
	router.ServeFiles("/static/products/*filepath", http.Dir(filepath.Join(imageDir, "products")))
}

func AddProductRoutes(router *httprouter.Router, h *products.Handler) {
	router.GET("/api/products", h.GetProducts)
	router.GET("/api/products/:id", h.GetProduct)
	router.GET("/api/products/:id/related", h.GetRelated)
	router.GET("/api/products/:id/thumbnail", h.GetThumbnail)
	router.GET("/api/catalog/featured", h.GetFeatured)
	router.GET("/api/catalog/categories", h.GetCategories)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.GET("/api/cart", middleware.Session(h.GetCart))
	router.DELETE("/api/cart", middleware.Session(h.ClearCart))
	router.POST("/api/cart/items", middleware.Session(h.AddToCart))
	router.PUT("/api/cart/items/:id", middleware.Session(h.UpdateCartItem))
	router.DELETE("/api/cart/items/:id", middleware.Session(h.RemoveCartItem))
	router.POST("/api/cart/drawer/:action", middleware.Session(h.Drawer))
}

func AddCheckoutRoutes(router *httprouter.Router, h *checkout.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/checkout", rateLimiter.Limit(middleware.Session(h.Checkout)))
	router.POST("/api/checkout/quick", rateLimiter.Limit(middleware.Session(h.QuickCheckout)))
	router.GET("/api/checkout/qr", rateLimiter.Limit(middleware.Session(h.QR)))
	router.GET("/api/checkout/summary.pdf", rateLimiter.Limit(middleware.Session(h.SummaryPDF)))
	router.POST("/api/products/:id/buy", rateLimiter.Limit(middleware.Session(h.BuyNow)))
}
