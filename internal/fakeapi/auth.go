package fakeapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-trackspense/internal/app"
	"github.com/MKhiriev/go-trackspense/internal/logger"
	"github.com/MKhiriev/go-trackspense/internal/utils"
	"github.com/MKhiriev/go-trackspense/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user.Email = strings.TrimSpace(user.Email)
	if _, err := mail.ParseAddress(user.Email); err != nil || user.Password == "" {
		log.Warn().Msg("invalid data provided")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.store.createUser(user); err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, app.MsgEmailAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte(app.MsgUserRegistered))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.store.checkPassword(credentials); err != nil {
		log.Err(err).Msg("no user was found/wrong password")
		http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(h.issuer, credentials.Email, h.tokenTTL, h.signKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err = utils.WriteJSON(w, http.StatusOK, models.LoginResponse{Token: token, Email: credentials.Email}); err != nil {
		log.Err(err).Msg("error writing login response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
