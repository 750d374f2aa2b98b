package handlers

import (
	"errors"
	"net/http"

	"typing-race-backend/internal/race"
	"typing-race-backend/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// statusForError maps service errors to HTTP statuses. Validation failures
// and bulk-input rejections are 400s, mismatches leave the race retryable at
// 422, conflicts and missing rows get their own codes. Anything unknown is a
// store failure surfaced as 500; nothing is fatal to the process.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrUnknownEntry):
		return http.StatusNotFound
	case errors.Is(err, services.ErrSessionNotJoinable),
		errors.Is(err, services.ErrAlreadyStarted),
		errors.Is(err, services.ErrAlreadyFinished),
		errors.Is(err, services.ErrResultRecorded),
		errors.Is(err, race.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, race.ErrTextMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidNickname),
		errors.Is(err, services.ErrWalletRequired),
		errors.Is(err, services.ErrParagraphTooShort),
		errors.Is(err, services.ErrInvalidWaitTime),
		errors.Is(err, services.ErrRaceNotActive),
		errors.Is(err, race.ErrBulkInput),
		errors.Is(err, race.ErrNotStarted):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
