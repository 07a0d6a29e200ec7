package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridehail/internal/domain"
	"ridehail/internal/service"
)

// resource maps the five CRUD routes of one entity onto its service.
// B is the JSON body used for both requests and responses.
type resource[T any, PT domain.Entity[T], B any] struct {
	name    string
	service service.CrudService[T]
	encode  func(*T) B
	decode  func(*B) (*T, error)
}

// List handles GET /{entity}
func (h *resource[T, PT, B]) List(c *gin.Context) {
	entities, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]B, 0, len(entities))
	for _, e := range entities {
		response = append(response, h.encode(e))
	}

	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /{entity}/:id
func (h *resource[T, PT, B]) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	entity, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if entity == nil {
		c.Status(http.StatusNotFound)
		return
	}

	respondJSON(c, http.StatusOK, h.encode(entity))
}

// Create handles POST /{entity}
// A body carrying an existing ID replaces that entity.
func (h *resource[T, PT, B]) Create(c *gin.Context) {
	entity, ok := h.bind(c)
	if !ok {
		return
	}

	saved, err := h.service.Upsert(c.Request.Context(), entity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/%s/%d", h.name, PT(saved).GetID()))
	respondJSON(c, http.StatusCreated, h.encode(saved))
}

// Update handles PATCH /{entity}
func (h *resource[T, PT, B]) Update(c *gin.Context) {
	entity, ok := h.bind(c)
	if !ok {
		return
	}

	if PT(entity).GetID() == 0 {
		respondError(c, errMissingID)
		return
	}

	saved, err := h.service.Upsert(c.Request.Context(), entity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, h.encode(saved))
}

// Delete handles DELETE /{entity}/:id
// Deleting an ID that does not exist still answers 204.
func (h *resource[T, PT, B]) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *resource[T, PT, B]) bind(c *gin.Context) (*T, bool) {
	var body B
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, errInvalidBody)
		return nil, false
	}

	entity, err := h.decode(&body)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return entity, true
}
