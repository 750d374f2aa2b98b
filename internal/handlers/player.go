package handlers

import (
	"net/http"

	"typing-race-backend/internal/services"
	"typing-race-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	raceService   *services.RaceService
	hub           *ws.Hub
}

func NewPlayerHandler(playerService *services.PlayerService, raceService *services.RaceService, hub *ws.Hub) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, raceService: raceService, hub: hub}
}

type RegisterRequest struct {
	SessionID     string `json:"session_id" binding:"required" example:"5c9d0f1e-8d2a-4b4e-9a31-2f6c1de0a111"`
	Nickname      string `json:"nickname" binding:"required" example:"speedster"`
	WalletAddress string `json:"wallet_address" binding:"required" example:"0xDEADBEEF"`
}

type ProgressRequest struct {
	TypedText string `json:"typed_text"`
}

type FinishRequest struct {
	TypedText string `json:"typed_text" binding:"required"`
}

// Register godoc
// @Summary      Register for a session
// @Description  Join a waiting session with a nickname and wallet address. The wallet address is free text and is not verified.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} models.PlayerEntry
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/players [post]
func (h *PlayerHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.playerService.Register(req.SessionID, req.Nickname, req.WalletAddress)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(entry.GameSessionID, ws.WSMessage{
		Type: ws.EventPlayerJoined,
		Data: gin.H{"session_id": entry.GameSessionID, "entry_id": entry.ID},
	})

	c.JSON(http.StatusCreated, entry)
}

// GetEntry godoc
// @Summary      Get a player entry
// @Description  The player's registration, including result fields once submitted.
// @Tags         players
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} models.PlayerEntry
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/players/{id} [get]
func (h *PlayerHandler) GetEntry(c *gin.Context) {
	entry, err := h.playerService.GetEntry(c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// StartTyping godoc
// @Summary      Record the first keystroke
// @Description  Starts the entry's race clock. Repeated calls keep the original start time.
// @Tags         players
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/players/{id}/start [post]
func (h *PlayerHandler) StartTyping(c *gin.Context) {
	if err := h.raceService.StartTyping(c.Param("id")); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "clock started"})
}

// Progress godoc
// @Summary      Report typing progress
// @Description  Feed the current typed text through the input boundary. A paste-sized jump is rejected.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id path string true "Entry ID"
// @Param        request body ProgressRequest true "Current typed text"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/players/{id}/progress [post]
func (h *PlayerHandler) Progress(c *gin.Context) {
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.raceService.Progress(c.Param("id"), req.TypedText); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "progress accepted"})
}

// FinishRace godoc
// @Summary      Submit the transcription
// @Description  Accepts the text if it matches the paragraph after trimming outer whitespace. A mismatch is retryable and records nothing.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        id path string true "Entry ID"
// @Param        request body FinishRequest true "Final typed text"
// @Success      200 {object} models.PlayerEntry
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /api/v1/players/{id}/finish [post]
func (h *PlayerHandler) FinishRace(c *gin.Context) {
	var req FinishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.raceService.FinishRace(c.Param("id"), req.TypedText)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(entry.GameSessionID, ws.WSMessage{
		Type: ws.EventPlayerFinished,
		Data: gin.H{"session_id": entry.GameSessionID, "entry_id": entry.ID},
	})
	h.hub.Broadcast(entry.GameSessionID, ws.WSMessage{
		Type: ws.EventPlacementsUpdated,
		Data: gin.H{"session_id": entry.GameSessionID},
	})

	c.JSON(http.StatusOK, entry)
}
