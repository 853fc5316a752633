package httpapi

import (
	"net/http"
	"strconv"

	"github.com/Galyna-kud/flowers-of-happiness/internal/catalog"
	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
)

func (h *Handlers) searchCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := catalog.Filter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		MinPrice: queryInt(q.Get("min_price"), 0),
		MaxPrice: queryInt(q.Get("max_price"), 0),
		Sort:     catalog.SortKey(q.Get("sort")),
	}

	items := catalog.Search(h.Products, f)
	respondJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"count": len(items),
	})
}

func (h *Handlers) listCategories(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, domain.Categories())
}

func (h *Handlers) listPromotions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, domain.Promotions())
}

func queryInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
