package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type flowerDeltaRequest struct {
	Delta int `json:"delta"`
}

type renameRequest struct {
	Name string `json:"name"`
}

func (h *Handlers) getBuilder(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.builderState())
}

func (h *Handlers) updateFlowerQuantity(w http.ResponseWriter, r *http.Request) {
	var req flowerDeltaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.Builder.UpdateQuantity(chi.URLParam(r, "id"), req.Delta)
	respondJSON(w, http.StatusOK, h.builderState())
}

func (h *Handlers) renameBouquet(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.Builder.SetName(req.Name)
	respondJSON(w, http.StatusOK, h.builderState())
}

func (h *Handlers) resetBuilder(w http.ResponseWriter, _ *http.Request) {
	h.Builder.Reset()
	respondJSON(w, http.StatusOK, h.builderState())
}

func (h *Handlers) saveBouquet(w http.ResponseWriter, _ *http.Request) {
	saved, err := h.Builder.Save()
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"bouquet": saved,
		"message": fmt.Sprintf("«%s» додано до ваших збережених букетів", saved.Name),
	})
}

func (h *Handlers) builderToCart(w http.ResponseWriter, _ *http.Request) {
	item, err := h.Builder.AddToCart(h.Cart)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"item":    item,
		"cart":    h.cartState(),
		"message": fmt.Sprintf("%s додано до вашого кошика", item.Bouquet.Name),
	})
}

func (h *Handlers) listSavedBouquets(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.Builder.Saved())
}

func (h *Handlers) removeSavedBouquet(w http.ResponseWriter, r *http.Request) {
	h.Builder.RemoveSaved(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, h.Builder.Saved())
}

func (h *Handlers) builderState() map[string]any {
	return map[string]any{
		"name":         h.Builder.Name(),
		"flowers":      h.Builder.Flowers(),
		"selected":     h.Builder.Selected(),
		"totalPrice":   h.Builder.TotalPrice(),
		"totalFlowers": h.Builder.TotalFlowers(),
	}
}
