package handler

import (
	"encoding/json"
	"errors"
	"fitstore/internal/core"
	"fitstore/internal/http/handler/middleware"
	"fitstore/internal/http/payload"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Signup      = "POST /auth/signup"
	Signin      = "POST /auth/signin"
	Signout     = "POST /auth/signout"
	CurrentUser = "GET /auth/me"
	SaveModel   = "POST /auth/save-model"
	ListModels  = "GET /auth/models"
	GetModel    = "GET /auth/models/{modelID}"
	DeleteModel = "DELETE /auth/models/{modelID}"
)

const sessionCookieName = "session_id"
const sessionCookieMaxAge = 7 * 24 * 60 * 60 // seconds

type AccountHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	accounts         AccountService
}

func NewAccountHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, accountService AccountService) *AccountHandler {
	return &AccountHandler{
		logs:             logger,
		requestValidator: requestValidator,
		accounts:         accountService,
	}
}

func (h *AccountHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.SignupRequest
	err := h.requestValidator.DecodeJSONPayload(r, &pl)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sign up",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	user, err := h.accounts.Signup(r.Context(), pl.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not sign up",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *AccountHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var pl payload.SigninRequest
	err := h.requestValidator.DecodeJSONPayload(r, &pl)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not sign in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Signin,
			"request_id", requestId)
		return
	}

	sessionID, user, err := h.accounts.Signin(r.Context(), pl.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Sign in failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("signin failed",
			"error", err,
			"handler", Signin,
			"request_id", requestId)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	resp := map[string]any{
		"success":    true,
		"message":    "Sign in successful",
		"session_id": sessionID,
		"user":       user,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.respond(w, Response{
			Message: "Sign out failed",
			Error:   "no active session",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing session cookie", "handler", Signout, "request_id", requestId)
		return
	}

	found := h.accounts.Signout(cookie.Value)

	// expire the cookie regardless of whether the session still existed
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	resp := Response{Success: found}
	if found {
		resp.Message = "Sign out successful"
	} else {
		resp.Message = "Session not found"
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.respond(w, map[string]any{"authenticated": false}, http.StatusOK, requestId)
		return
	}

	user, err := h.accounts.CurrentUser(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, core.ErrUnauthorized) {
			h.respond(w, map[string]any{"authenticated": false}, http.StatusOK, requestId)
			return
		}

		h.respond(w, Response{
			Message: "Could not resolve current user",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to resolve current user",
			"error", err,
			"handler", CurrentUser,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"authenticated": true,
		"user":          user,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleSaveModel(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.unauthorized(w, requestId, SaveModel)
		return
	}

	var pl payload.SaveModelRequest
	err = h.requestValidator.DecodeJSONPayload(r, &pl)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not save model",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SaveModel,
			"request_id", requestId)
		return
	}

	err = h.accounts.SaveModel(r.Context(), cookie.Value, pl.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrUnauthorized) {
			h.unauthorized(w, requestId, SaveModel)
			return
		}

		h.respond(w, Response{
			Message: "Failed to save model",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to save model",
			"error", err,
			"handler", SaveModel,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Success: true,
		Message: "Model saved successfully",
	}, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.unauthorized(w, requestId, ListModels)
		return
	}

	models, err := h.accounts.ListModels(r.Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, core.ErrUnauthorized) {
			h.unauthorized(w, requestId, ListModels)
			return
		}

		h.respond(w, Response{
			Message: "Failed to list models",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list models",
			"error", err,
			"handler", ListModels,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"success": true,
		"models":  models,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleGetModel(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.unauthorized(w, requestId, GetModel)
		return
	}

	modelID, err := parseModelID(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "invalid model id",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid model id", "error", err, "handler", GetModel, "request_id", requestId)
		return
	}

	model, err := h.accounts.GetModel(r.Context(), cookie.Value, modelID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUnauthorized):
			h.unauthorized(w, requestId, GetModel)
		case errors.Is(err, core.ErrModelNotFound):
			h.respond(w, Response{
				Message: "Model not found",
				Error:   err.Error(),
			}, http.StatusNotFound,
				requestId)
		default:
			h.respond(w, Response{
				Message: "Failed to get model",
				Error:   "unexpected error occurred",
			}, http.StatusInternalServerError,
				requestId)
			h.logs.Errorw("failed to get model",
				"error", err,
				"handler", GetModel,
				"request_id", requestId)
		}
		return
	}

	resp := map[string]any{
		"success": true,
		"model":   model,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *AccountHandler) HandleDeleteModel(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.unauthorized(w, requestId, DeleteModel)
		return
	}

	modelID, err := parseModelID(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "invalid model id",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid model id", "error", err, "handler", DeleteModel, "request_id", requestId)
		return
	}

	err = h.accounts.DeleteModel(r.Context(), cookie.Value, modelID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUnauthorized):
			h.unauthorized(w, requestId, DeleteModel)
		case errors.Is(err, core.ErrModelNotFound):
			h.respond(w, Response{
				Message: "Model not found",
				Error:   err.Error(),
			}, http.StatusNotFound,
				requestId)
		default:
			h.respond(w, Response{
				Message: "Failed to delete model",
				Error:   "unexpected error occurred",
			}, http.StatusInternalServerError,
				requestId)
			h.logs.Errorw("failed to delete model",
				"error", err,
				"handler", DeleteModel,
				"request_id", requestId)
		}
		return
	}

	h.respond(w, Response{
		Success: true,
		Message: "Model deleted successfully",
	}, http.StatusOK, requestId)
}

func (h *AccountHandler) unauthorized(w http.ResponseWriter, requestId, route string) {
	h.respond(w, Response{
		Message: "Authentication required",
		Error:   core.ErrUnauthorized.Error(),
	}, http.StatusUnauthorized,
		requestId)
	h.logs.Errorw("missing or invalid session", "handler", route, "request_id", requestId)
}

func (h *AccountHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}

func parseModelID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("modelID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse model id: %w", err)
	}
	return uint(id), nil
}
