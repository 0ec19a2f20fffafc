package handlers

import (
	"net/http"

	"portfolio-api/internal/services"
)

type SkillHandler struct {
	skillService services.SkillService
}

func NewSkillHandler(skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.skillService.FindAll(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}

func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	category, err := h.skillService.FindOne(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSkillCategoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	category, err := h.skillService.Create(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, category)
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input services.UpdateSkillCategoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	category, err := h.skillService.Update(r.Context(), id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	category, err := h.skillService.Remove(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}
