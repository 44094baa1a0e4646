package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"taskboard/internal/model"
	"taskboard/internal/service"
)

const (
	msgInvalidBody    = "Corpo da requisição inválido."
	msgTaskRequired   = "Título e descrição são obrigatórios."
	msgTaskNotFound   = "Tarefa não encontrada"
	msgNoTasks        = "Nenhuma tarefa encontrada"
	msgNoCompleted    = "Nenhuma tarefa concluída encontrada"
	msgNoNotCompleted = "Nenhuma tarefa não concluída encontrada"
)

func (s *server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, s.tasks.ListAll, msgNoTasks)
}

func (s *server) handleListCompleted(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, s.tasks.ListCompleted, msgNoCompleted)
}

func (s *server) handleListNotCompleted(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, s.tasks.ListNotCompleted, msgNoNotCompleted)
}

func (s *server) listTasks(w http.ResponseWriter, r *http.Request, list func(context.Context) ([]model.Task, error), emptyMsg string) {
	tasks, err := list(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmpty) {
			s.writeMessage(w, http.StatusNotFound, emptyMsg)
			return
		}
		s.writeUnhandled(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tasks)
}

func (s *server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var candidate model.Task
	if err := decodeJSON(r, &candidate); err != nil {
		s.writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	created, err := s.tasks.Create(r.Context(), candidate)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			s.writeMessage(w, http.StatusBadRequest, msgTaskRequired)
			return
		}
		s.writeUnhandled(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/tarefas/"+created.ID)
	s.writeJSON(w, http.StatusCreated, created)
}

func (s *server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var incoming model.Task
	if err := decodeJSON(r, &incoming); err != nil {
		s.writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := s.tasks.Update(r.Context(), id, incoming); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			s.writeMessage(w, http.StatusNotFound, msgTaskNotFound)
			return
		}
		s.writeUnhandled(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
