package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-labs/organ-backend-go/internal/models"
	"github.com/lifeline-labs/organ-backend-go/internal/service"
	"github.com/lifeline-labs/organ-backend-go/pkg/response"
)

// sessionNotFoundMessage is the error string the API contract promises for
// unknown session ids
const sessionNotFoundMessage = "Navigation session not found"

// NavigationHandler handles HTTP requests for navigation sessions
type NavigationHandler struct {
	nav *service.NavigationService
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(nav *service.NavigationService) *NavigationHandler {
	return &NavigationHandler{nav: nav}
}

// Start begins a navigation session
// POST /api/v1/navigation/start
func (h *NavigationHandler) Start(c *gin.Context) {
	var req models.StartNavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "user_id, start and end are required")
		return
	}

	result, err := h.nav.Start(req.UserID, *req.Start, *req.End, req.TransportMode)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCoordinate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Update reports the traveller's position for an active session
// PUT /api/v1/navigation/:id/update
func (h *NavigationHandler) Update(c *gin.Context) {
	var req models.UpdateNavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "position is required")
		return
	}

	result, err := h.nav.Update(c.Param("id"), *req.Position)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			response.NotFound(c, sessionNotFoundMessage)
		case errors.Is(err, models.ErrInvalidCoordinate):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Success(c, result)
}

// End completes a navigation session
// POST /api/v1/navigation/:id/end
func (h *NavigationHandler) End(c *gin.Context) {
	result, err := h.nav.End(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.NotFound(c, sessionNotFoundMessage)
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Get returns the full session record
// GET /api/v1/navigation/:id
func (h *NavigationHandler) Get(c *gin.Context) {
	session, err := h.nav.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			response.NotFound(c, sessionNotFoundMessage)
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, session)
}
