package auth

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osdatum/server/internal/errors"
	"github.com/osdatum/server/internal/exchange"
	"github.com/osdatum/server/internal/session"
)

// ExchangeHandler godoc
// @Summary Exchange an identity token for a session token
// @Description Verifies a provider-issued ID token, provisions the user on first registration, and returns a signed session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ExchangeRequest true "Identity token and mode (register or login)"
// @Success 200 {object} ExchangeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/exchange [post]
func ExchangeHandler(svc *exchange.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExchangeRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := svc.Exchange(c.Request.Context(), req.IDToken, req.Mode)
		if err != nil {
			switch {
			case stderrors.Is(err, exchange.ErrUnregisteredUser):
				errors.Unauthorized(c, "email is not registered, please register first")
			case stderrors.Is(err, exchange.ErrInvalidAssertion):
				errors.Unauthorized(c, "invalid or expired identity token")
			default:
				errors.InternalError(c, "authentication failed", err)
			}
			return
		}

		c.JSON(http.StatusOK, ExchangeResponse{
			Token:     result.Token,
			ExpiresIn: result.ExpiresIn,
			Message:   "token will expire in 1 hour",
		})
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(directory UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := session.GetUserID(c)

		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		user, err := directory.FindBySubjectID(c.Request.Context(), userID)
		if err != nil {
			errors.NotFound(c, "user")
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}
