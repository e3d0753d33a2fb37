package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-server/internal/app"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The "Authorization" header may carry either "Bearer <token>" or the bare
// token. On success the user id is stored in the request context (see
// [utils.WithUserID]) and added to the request logger, and next is called
// exactly once. Otherwise the request ends here with 401:
//   - no header: {"message":"No token provided"};
//   - malformed, expired or foreign token: {"message":"Invalid token"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, app.MsgNoTokenProvided)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("malformed authorization header")
			unauthorized(w, app.MsgInvalidToken)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			unauthorized(w, app.MsgInvalidToken)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})
		ctx = utils.WithUserID(l.WithContext(ctx), token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteMessage(w, message, http.StatusUnauthorized)
}
