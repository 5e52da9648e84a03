package checkout

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"shoaib/cart"
	"shoaib/catalog"
	"shoaib/models"
	"shoaib/utils"
)

const qrSize = 256

// Handler serves the checkout endpoints.
type Handler struct {
	service      *Service
	carts        *cart.Handler
	catalog      *catalog.Catalog
	shopName     string
	currencyCode string
	log          *zap.Logger
}

func NewHandler(s *Service, carts *cart.Handler, c *catalog.Catalog, shopName, currencyCode string, log *zap.Logger) *Handler {
	return &Handler{service: s, carts: carts, catalog: c, shopName: shopName, currencyCode: currencyCode, log: log}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrEmptyCart) {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	h.log.Error("checkout failed", zap.Error(err))
	utils.RespondWithError(w, http.StatusInternalServerError, "Checkout failed")
}

// Checkout builds the detailed message from the cart and the optional
// customer name and shipping address.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var details models.OrderDetails
	if err := utils.DecodeJSON(r, &details); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	link, err := h.service.Detailed(r.Context(), utils.GetSessionIDFromRequest(r), h.carts.Lines(r), details)
	if err != nil {
		h.fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, link)
}

// QuickCheckout builds the quick message for the whole cart.
func (h *Handler) QuickCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	link, err := h.service.Quick(r.Context(), utils.GetSessionIDFromRequest(r), h.carts.Lines(r))
	if err != nil {
		h.fail(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, link)
}

// BuyNow builds a quick message for one product without touching the cart.
func (h *Handler) BuyNow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, ok := h.catalog.FindByID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	qty := utils.ParseIntParam(r, "qty", 1)
	link := h.service.BuyNow(r.Context(), utils.GetSessionIDFromRequest(r), product, qty)
	utils.RespondWithJSON(w, http.StatusOK, link)
}

// QR returns the cart's deep link as a PNG. mode is "quick" (default) or
// "detailed"; the detailed variant carries no customer fields. Rendering
// the code is not a checkout, so no event is published.
func (h *Handler) QR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	mode := r.URL.Query().Get("mode")
	switch mode {
	case "":
		mode = ModeQuick
	case ModeQuick, ModeDetailed:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown checkout mode")
		return
	}

	link, err := h.service.Link(mode, h.carts.Lines(r), models.OrderDetails{})
	if err != nil {
		h.fail(w, err)
		return
	}

	png, err := QRCode(link.URL, qrSize)
	if err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// SummaryPDF returns a printable summary of the cart with a QR code of the
// quick checkout link. Like QR it publishes no event.
func (h *Handler) SummaryPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lines := h.carts.Lines(r)
	link, err := h.service.Link(ModeQuick, lines, models.OrderDetails{})
	if err != nil {
		h.fail(w, err)
		return
	}

	doc, err := Summary{
		ShopName: h.shopName,
		Currency: h.currencyCode,
		Lines:    lines,
		Total:    link.Total,
		Link:     link.URL,
		Date:     time.Now(),
	}.RenderPDF()
	if err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=order-summary.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
