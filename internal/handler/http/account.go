package http

import (
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AccountService.Login(r.Context(), credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", token.AccountID).Msg("account logged in")
	utils.WriteJSON(w, models.TokenResponse{Token: token.Key}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.createAccount(w, r)
}

// addUser runs behind tokenAuth, so the creator is always known.
func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	if creator, ok := utils.GetAccountFromContext(r.Context()); ok {
		logger.FromRequest(r).Debug().Str("created_by", creator.Username).Msg("adding account")
	}

	h.createAccount(w, r)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.CreateAccount(r.Context(), credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", account.ID).Str("username", account.Username).Msg("account created")
	utils.WriteJSON(w, models.SuccessResponse{Success: app.MsgUserCreated}, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.ListAccounts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.AccountService.RemoveAccount(r.Context(), credentials); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("username", credentials.Username).Msg("account removed")
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps err to its status and JSON body. Server-side failures are
// logged with the full error chain; the client only sees a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Send()
	}

	utils.WriteError(w, message, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
