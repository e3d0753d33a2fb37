package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/utils"
	"github.com/MKhiriev/go-todo-server/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, fmt.Errorf("user registration failed: %w", err))
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	h.writeToken(w, r, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, fmt.Errorf("login failed: %w", err))
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user logged in")
	h.writeToken(w, r, user)
}

// writeToken issues a token for user and sends it both as the JSON body and
// as a bearer "Authorization" header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing token response")
	}
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
}
