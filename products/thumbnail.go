package products

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"shoaib/utils"
)

const (
	defaultThumbWidth = 400
	maxThumbWidth     = 1200
)

// imagePath maps a product image path such as /products/bridal-1.jpg onto
// the image directory. Cleaning against "/" keeps the result inside it.
func (h *Handler) imagePath(image string) string {
	return filepath.Join(h.imageDir, filepath.FromSlash(path.Clean("/"+image)))
}

// GetThumbnail serves the product image resized to ?w= pixels wide as JPEG.
func (h *Handler) GetThumbnail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, ok := h.catalog.FindByID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	width := utils.ParseIntParam(r, "w", defaultThumbWidth)
	if width <= 0 {
		width = defaultThumbWidth
	}
	if width > maxThumbWidth {
		width = maxThumbWidth
	}

	file := h.imagePath(product.Image)
	img, err := imaging.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			utils.RespondWithError(w, http.StatusNotFound, "image not found")
			return
		}
		h.log.Error("open product image", zap.String("path", file), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read image")
		return
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Thumbnail-Width", strconv.Itoa(width))
	if err := imaging.Encode(w, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		h.log.Warn("encode thumbnail", zap.String("product_id", product.ID), zap.Error(err))
	}
}
