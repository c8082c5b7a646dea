package rest

import (
	"errors"
	"net/http"

	"ndjimba/internal/contextkeys"
	"ndjimba/internal/core/domain"
	"ndjimba/internal/core/port"
	"ndjimba/internal/core/port/usecases_port"
)

type AuthHandler struct {
	validatePhoneUC usecases_port.ValidatePhoneUseCase
	submitPhoneUC   usecases_port.SubmitPhoneSignupUseCase
	loginUC         usecases_port.LoginWithCodeUseCase
}

func NewAuthHandler(
	validatePhoneUC usecases_port.ValidatePhoneUseCase,
	submitPhoneUC usecases_port.SubmitPhoneSignupUseCase,
	loginUC usecases_port.LoginWithCodeUseCase,
) *AuthHandler {
	return &AuthHandler{
		validatePhoneUC: validatePhoneUC,
		submitPhoneUC:   submitPhoneUC,
		loginUC:         loginUC,
	}
}

// ValidatePhone handles POST /api/v1/phone/validate
func (h *AuthHandler) ValidatePhone(w http.ResponseWriter, r *http.Request) {
	var req PhoneRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.validatePhoneUC.Execute(r.Context(), req.Phone)
	resp := PhoneValidationResponse{IsValid: res.IsValid, Normalized: res.Normalized}
	if !res.IsValid {
		resp.Message = domain.InvalidPhoneMessage
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// SubmitPhone handles POST /api/v1/auth/phone. Business outcomes, including
// remote failures, are part of the returned state.
func (h *AuthHandler) SubmitPhone(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req PhoneRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.submitPhoneUC.Execute(r.Context(), req.Phone)
	if err != nil {
		// the client is gone, nobody reads the response
		logger.Warn("Signup aborted", port.Fields{"error": err.Error()})
		return
	}

	RespondWithJSON(w, http.StatusOK, toSignupState(state))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var req LoginRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Phone == "" || req.Code == "" {
		WriteJSONError(w, http.StatusBadRequest, "phone and code are required")
		return
	}

	account, token, err := h.loginUC.Execute(r.Context(), req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			WriteJSONError(w, http.StatusUnauthorized, "invalid phone or access code")
			return
		}
		if r.Context().Err() != nil {
			return
		}
		logger.Error("Login failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, domain.GenericErrorMessage)
		return
	}

	RespondWithJSON(w, http.StatusOK, LoginResponse{Token: token, AccountID: account.ID})
}
