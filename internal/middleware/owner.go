package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/stpnv0/TicketHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	UsernameHeader = "username"
	PasswordHeader = "password"
)

type Authorizer interface {
	Authorize(ctx context.Context, username, password string) error
}

// RequireOwner aborts the request unless the username/password headers
// identify a known owner.
func RequireOwner(a Authorizer) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		err := a.Authorize(c.Request.Context(), c.GetHeader(UsernameHeader), c.GetHeader(PasswordHeader))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, domain.ErrUnauthorized):
			c.Set("error", err.Error())
			c.Abort()
			c.String(http.StatusUnauthorized, "Unauthorized")
		default:
			c.Set("error", err.Error())
			c.Abort()
			c.String(http.StatusInternalServerError, "internal server error")
		}
	}
}
