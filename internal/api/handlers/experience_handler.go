package handlers

import (
	"net/http"

	"portfolio-api/internal/models"
	"portfolio-api/internal/services"
)

type ExperienceHandler struct {
	experienceService services.ExperienceService
}

func NewExperienceHandler(experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		experienceService: experienceService,
	}
}

// List returns every experience, or only those of ?type= when given.
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		experiences []models.Experience
		err         error
	)
	if expType := r.URL.Query().Get("type"); expType != "" {
		experiences, err = h.experienceService.FindByType(r.Context(), expType)
	} else {
		experiences, err = h.experienceService.FindAll(r.Context())
	}
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, experiences)
}

func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	experience, err := h.experienceService.FindOne(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, experience)
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateExperienceInput
	if !decodeJSON(w, r, &input) {
		return
	}

	experience, err := h.experienceService.Create(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, experience)
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input services.UpdateExperienceInput
	if !decodeJSON(w, r, &input) {
		return
	}

	experience, err := h.experienceService.Update(r.Context(), id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, experience)
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	experience, err := h.experienceService.Remove(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, experience)
}
