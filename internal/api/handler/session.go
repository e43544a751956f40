package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordscramble/internal/api/request"
	"github.com/mcoot/wordscramble/internal/api/response"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/game"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	gameController *game.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(gameController *game.Controller) *SessionHandler {
	return &SessionHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	// An empty body starts a session with a random root word
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var (
		session *model.Session
		err     error
	)
	if req.RootWord != "" {
		session, err = h.gameController.NewSessionWithRoot(r.Context(), req.RootWord)
	} else {
		session, err = h.gameController.NewSession(r.Context())
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(session))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.gameController.GetSession(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// Submit handles POST /api/v1/sessions/{id}/words
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := h.gameController.Submit(r.Context(), sessionID(r), req.Word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitResponse{
		Word:    result.Word,
		Session: response.SessionFromModel(result.Session),
	})
}

// Restart handles POST /api/v1/sessions/{id}/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	session, err := h.gameController.Restart(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// End handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.EndSession(r.Context(), sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}
