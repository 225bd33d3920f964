package middleware

import (
	"errors"
	"net/http"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase"
	"woorkins_payments/pkg"

	"github.com/gin-gonic/gin"
)

const ctxAccount = "account"

// RequireAccount authenticates the bearer token and stores the resolved
// account on the context. Failures answer 400 like every other handled
// error of this API.
func RequireAccount(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			appErr := mapAuthError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(ctxAccount, account)
		c.Next()
	}
}

func AccountFrom(c *gin.Context) (entities.Account, bool) {
	v, ok := c.Get(ctxAccount)
	if !ok {
		return entities.Account{}, false
	}
	account, ok := v.(entities.Account)
	return account, ok
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Unauthenticated", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
