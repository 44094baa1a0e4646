package httpapi

import (
	"errors"
	"net/http"

	"taskboard/internal/model"
	"taskboard/internal/service"
)

const msgNoCategories = "Nenhuma categoria encontrada"

func (s *server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmpty) {
			s.writeMessage(w, http.StatusNotFound, msgNoCategories)
			return
		}
		s.writeUnhandled(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, categories)
}

func (s *server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var candidate model.Category
	if err := decodeJSON(r, &candidate); err != nil {
		s.writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	created, err := s.categories.Create(r.Context(), candidate)
	if err != nil {
		s.writeUnhandled(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/categoria/"+created.ID)
	s.writeJSON(w, http.StatusCreated, created)
}
