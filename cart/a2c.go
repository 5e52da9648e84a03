package cart

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"shoaib/catalog"
	"shoaib/models"
	"shoaib/utils"
)

// Handler serves the session cart.
type Handler struct {
	catalog  *catalog.Catalog
	sessions *Sessions
	currency string
	log      *zap.Logger
}

func NewHandler(c *catalog.Catalog, sessions *Sessions, currency string, log *zap.Logger) *Handler {
	return &Handler{catalog: c, sessions: sessions, currency: currency, log: log}
}

// StoreFor returns the cart of the request's session.
func (h *Handler) StoreFor(r *http.Request) *Store {
	return h.sessions.Get(utils.GetSessionIDFromRequest(r))
}

func (h *Handler) respond(w http.ResponseWriter, status int, store *Store) {
	snap := store.Snapshot()
	snap.TotalDisplay = utils.FormatPrice(h.currency, snap.TotalPrice)
	utils.RespondWithJSON(w, status, snap)
}

// GetCart returns the current cart snapshot.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.respond(w, http.StatusOK, h.StoreFor(r))
}

// AddToCart adds a catalog product; quantity defaults to 1.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  *int   `json:"quantity"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		h.log.Debug("add to cart decode error", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}

	product, ok := h.catalog.FindByID(req.ProductID)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	store := h.StoreFor(r)
	store.AddItem(product, quantity)
	h.log.Info("added item",
		zap.String("product_id", product.ID),
		zap.Int("quantity", quantity),
		zap.Int("total_items", store.TotalItems()))

	h.respond(w, http.StatusOK, store)
}

// UpdateCartItem sets a line's quantity; zero or less removes it.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil || req.Quantity == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity is required")
		return
	}

	store := h.StoreFor(r)
	store.UpdateQuantity(ps.ByName("id"), *req.Quantity)
	h.respond(w, http.StatusOK, store)
}

// RemoveCartItem drops a line. Removing an absent product is not an error.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store := h.StoreFor(r)
	store.RemoveItem(ps.ByName("id"))
	h.respond(w, http.StatusOK, store)
}

// ClearCart empties the cart and leaves the drawer as it was.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store := h.StoreFor(r)
	store.Clear()
	h.respond(w, http.StatusOK, store)
}

// Drawer opens, closes or toggles the cart drawer.
func (h *Handler) Drawer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	store := h.StoreFor(r)
	switch ps.ByName("action") {
	case "open":
		store.Open()
	case "close":
		store.Close()
	case "toggle":
		store.Toggle()
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown drawer action")
		return
	}
	h.respond(w, http.StatusOK, store)
}

// Lines returns the session's lines, for handlers outside this package.
func (h *Handler) Lines(r *http.Request) []models.CartLine {
	return h.StoreFor(r).Lines()
}
