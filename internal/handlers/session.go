package handlers

import (
	"net/http"

	"typing-race-backend/internal/models"
	"typing-race-backend/internal/services"
	"typing-race-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
	playerService  *services.PlayerService
	hub            *ws.Hub
}

func NewSessionHandler(sessionService *services.SessionService, playerService *services.PlayerService, hub *ws.Hub) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, playerService: playerService, hub: hub}
}

type CreateSessionRequest struct {
	Paragraph   string `json:"paragraph" example:"The quick brown fox jumps over the lazy dog"`
	WaitSeconds int    `json:"wait_seconds" binding:"required" example:"60"`
}

type SessionState struct {
	models.GameSession
	PlayerCount int `json:"player_count"`
}

func (h *SessionHandler) sessionState(session *models.GameSession) (SessionState, error) {
	count, err := h.playerService.Count(session.ID)
	if err != nil {
		return SessionState{}, err
	}
	return SessionState{GameSession: *session, PlayerCount: count}, nil
}

// CreateSession godoc
// @Summary      Create a game session
// @Description  Create a race in waiting state with a countdown deadline. Omitting the paragraph uses the default race text.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateSessionRequest true "Session data"
// @Success      201 {object} SessionState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.CreateSession(req.Paragraph, req.WaitSeconds)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessionState(session)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, state)
}

// ListOpenSessions godoc
// @Summary      List open sessions
// @Description  All waiting or active sessions, most recent first. Stale sessions are reclassified finished before the list is built.
// @Tags         sessions
// @Produce      json
// @Success      200 {array} models.GameSession
// @Router       /api/v1/sessions [get]
func (h *SessionHandler) ListOpenSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListOpenSessions()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// GetCurrentSession godoc
// @Summary      Get the current session
// @Description  The authoritative open session for player-facing flows: most recently created among open sessions.
// @Tags         sessions
// @Produce      json
// @Success      200 {object} SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/current [get]
func (h *SessionHandler) GetCurrentSession(c *gin.Context) {
	session, err := h.sessionService.GetCurrentSession()
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessionState(session)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetSession godoc
// @Summary      Get session state
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} SessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionService.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.sessionState(session)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// ActivateSession godoc
// @Summary      Force-start a session
// @Description  Move a waiting session to active without waiting for the countdown.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} SessionState
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/activate [post]
func (h *SessionHandler) ActivateSession(c *gin.Context) {
	session, err := h.sessionService.Activate(c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(session.ID, ws.WSMessage{
		Type: ws.EventSessionActivated,
		Data: gin.H{"session_id": session.ID, "status": session.Status},
	})

	state, err := h.sessionState(session)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// FinishSession godoc
// @Summary      Close a session
// @Description  Explicitly conclude a race. Closure is a privileged trigger; the sweeper only closes sessions whose race window has elapsed.
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Session ID"
// @Success      200 {object} SessionState
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/finish [post]
func (h *SessionHandler) FinishSession(c *gin.Context) {
	session, err := h.sessionService.Finish(c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(session.ID, ws.WSMessage{
		Type: ws.EventSessionFinished,
		Data: gin.H{"session_id": session.ID, "status": session.Status},
	})

	state, err := h.sessionState(session)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetPlayers godoc
// @Summary      List registered players
// @Description  Entries for the session in join order, for the waiting room roster.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {array} models.PlayerEntry
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/players [get]
func (h *SessionHandler) GetPlayers(c *gin.Context) {
	if _, err := h.sessionService.GetSession(c.Param("id")); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	entries, err := h.playerService.ListEntries(c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetResults godoc
// @Summary      Get the results podium
// @Description  Finishers of the session ordered by placement, fastest first.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {array} models.PlayerEntry
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/sessions/{id}/results [get]
func (h *SessionHandler) GetResults(c *gin.Context) {
	if _, err := h.sessionService.GetSession(c.Param("id")); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	entries, err := h.playerService.Results(c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
