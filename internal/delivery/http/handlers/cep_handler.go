package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mercadim/marketplace-service/internal/delivery/http/dto"
	"github.com/mercadim/marketplace-service/internal/infrastructure/cep"
)

type CEPHandler struct {
	Client *cep.ViaCEPClient
}

func NewCEPHandler(client *cep.ViaCEPClient) *CEPHandler {
	return &CEPHandler{Client: client}
}

func (h *CEPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	address, err := h.Client.Lookup(chi.URLParam(r, "cep"))
	if err != nil {
		if errors.Is(err, cep.ErrInvalidCEP) {
			writeBadRequest(w, err.Error())
			return
		}
		if errors.Is(err, cep.ErrCEPNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CEPResponse{
		CEP:          address.CEP,
		Street:       address.Street,
		Neighborhood: address.Neighborhood,
		City:         address.City,
		State:        address.State,
	})
}
