package products

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"shoaib/catalog"
	"shoaib/models"
	"shoaib/utils"
)

const relatedLimit = 4

// Handler serves the read-only catalog.
type Handler struct {
	catalog  *catalog.Catalog
	imageDir string
	log      *zap.Logger
}

func NewHandler(c *catalog.Catalog, imageDir string, log *zap.Logger) *Handler {
	return &Handler{catalog: c, imageDir: imageDir, log: log}
}

// GetProducts lists products matching the q, category, min, max and sort
// query parameters. No parameters returns the whole catalog in order.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := utils.ParseSearchQuery(r)
	results := h.catalog.Search(q)
	h.log.Debug("product search",
		zap.String("q", q.Text),
		zap.String("category", q.Category),
		zap.String("sort", string(q.Sort)),
		zap.Int("results", len(results)))
	utils.RespondWithJSON(w, http.StatusOK, results)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, ok := h.catalog.FindByID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetRelated returns up to four other products of the same category.
func (h *Handler) GetRelated(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, ok := h.catalog.FindByID(id); !ok {
		utils.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.catalog.Related(id, relatedLimit))
}

func (h *Handler) GetFeatured(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.catalog.Featured())
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, models.Categories)
}
