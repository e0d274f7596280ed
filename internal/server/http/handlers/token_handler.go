package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/pkondrashkov/accountd/internal/domain/errors"
	"github.com/pkondrashkov/accountd/internal/server/http/dto"
)

// wrongCredentialsMessage deliberately does not reveal which part of the
// credential failed, nor whether the input was parsable at all.
const wrongCredentialsMessage = "Wrong email or password"

// TokenHandler exchanges credentials for an opaque bearer token.
type TokenHandler struct {
	facade TokenFacade
}

// NewTokenHandler creates TokenHandler instance.
func NewTokenHandler(facade TokenFacade) *TokenHandler {
	return &TokenHandler{facade: facade}
}

// Issue handles POST /api/v1/account/token.
func (h *TokenHandler) Issue(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejected(c)
		return
	}

	user, key, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, domainErrors.ErrMalformedInput):
			h.rejected(c)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	respond(c, http.StatusOK, dto.NewTokenPayload(user, key))
}

func (h *TokenHandler) rejected(c *gin.Context) {
	respond(c, http.StatusUnauthorized, dto.MessagePayload{Message: wrongCredentialsMessage})
}
