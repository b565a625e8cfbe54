package security

import (
	"context"
	"errors"
	"net/http"

	"files-manager/internal/common"
	"files-manager/internal/ports"
	"files-manager/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	TokenHeader = "X-Token"
)

// Identity : пользователь, которому принадлежит токен запроса
type Identity struct {
	UserID string
	Token  string
}

// TokenMiddleware : пропускает запрос только с действующим X-Token, иначе 401
func TokenMiddleware(auth ports.AuthenticationService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := request.Header.Get(TokenHeader)

			userID, err := auth.Identify(request.Context(), token)
			if err != nil {
				status := http.StatusUnauthorized
				if !errors.Is(err, common.ErrUnauthorized) {
					status = http.StatusInternalServerError
				}
				util.HandleError(writer, common.PublicMessage(err), status)
				return
			}

			ctx := WithIdentity(request.Context(), Identity{UserID: userID, Token: token})
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, UserContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, error) {
	identity, ok := ctx.Value(UserContextKey).(Identity)
	if !ok || identity.UserID == "" {
		return Identity{}, common.ErrUnauthorized
	}
	return identity, nil
}
