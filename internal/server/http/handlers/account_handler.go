package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pkondrashkov/accountd/internal/domain/errors"
	"github.com/pkondrashkov/accountd/internal/server/http/dto"
)

// AccountHandler serves the authenticated user resource.
type AccountHandler struct {
	facade AccountFacade
}

// NewAccountHandler creates AccountHandler instance.
func NewAccountHandler(facade AccountFacade) *AccountHandler {
	return &AccountHandler{facade: facade}
}

// Profile handles GET /api/v1/account/user.
func (h *AccountHandler) Profile(c *gin.Context) {
	user, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	respond(c, http.StatusOK, dto.NewUserPayload(user))
}

// Create handles POST /api/v1/account/user. The new record is built from the
// caller's own fields; success answers 200, matching the profile read.
func (h *AccountHandler) Create(c *gin.Context) {
	user, err := h.facade.CreateFromCaller(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondError(c, http.StatusConflict, "username already exists")
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	respond(c, http.StatusOK, dto.NewUserPayload(user))
}
