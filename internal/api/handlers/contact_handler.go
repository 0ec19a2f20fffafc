package handlers

import (
	"net/http"

	"portfolio-api/internal/services"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Create stores a message from the public contact form.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateContactInput
	if !decodeJSON(w, r, &input) {
		return
	}

	message, err := h.contactService.Create(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, message)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.FindAll(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

func (h *ContactHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.FindUnread(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	message, err := h.contactService.FindOne(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message)
}

func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	message, err := h.contactService.MarkAsRead(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	message, err := h.contactService.Remove(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message)
}
