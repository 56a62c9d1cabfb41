package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/buy-from-me/internal/app"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/models"
)

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input models.ProductInput
	if err := utils.DecodeJSON(r.Body, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	product, err := h.services.ProductService.CreateProduct(r.Context(), user, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, product)
}

// listProducts returns all products, optionally paged by the limit and
// offset query parameters.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.services.ProductService.ListProducts(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.WriteSuccess(w, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ProductInput
	if err = utils.DecodeJSON(r.Body, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	product, err := h.services.ProductService.UpdateProduct(r.Context(), user, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProductService.DeleteProduct(r.Context(), user, id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, app.MsgDeleted)
}

func (h *Handler) updateBusiness(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.BusinessUpdate
	if err = utils.DecodeJSON(r.Body, &input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	business, err := h.services.BusinessService.UpdateBusiness(r.Context(), user, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, business)
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func pageFromQuery(r *http.Request) (models.Page, error) {
	var page models.Page
	query := r.URL.Query()

	for param, target := range map[string]*uint64{"limit": &page.Limit, "offset": &page.Offset} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.Page{}, ErrInvalidPagination
		}
		*target = v
	}

	return page, nil
}
