package session

import (
	"net/http"

	"github.com/Abraxas-365/counsel/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SESSION")

// Error codes
var (
	CodeSessionNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Session not found")
	CodeMissingSessionID  = ErrRegistry.Register("MISSING_ID", errx.TypeValidation, http.StatusBadRequest, "Session ID is required")
	CodeUnknownAction     = ErrRegistry.Register("UNKNOWN_ACTION", errx.TypeValidation, http.StatusBadRequest, "Unknown action name")
	CodeUnknownSlot       = ErrRegistry.Register("UNKNOWN_SLOT", errx.TypeValidation, http.StatusBadRequest, "Unknown slot name")
	CodeInvalidFileFormat = ErrRegistry.Register("INVALID_FILE_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Unsupported resume file format")
	CodeQueueUnavailable  = ErrRegistry.Register("QUEUE_UNAVAILABLE", errx.TypeExternal, http.StatusBadGateway, "Extraction queue is unavailable")
)

// Helper functions
func ErrSessionNotFound() *errx.Error {
	return ErrRegistry.New(CodeSessionNotFound)
}

func ErrMissingSessionID() *errx.Error {
	return ErrRegistry.New(CodeMissingSessionID)
}

func ErrUnknownAction() *errx.Error {
	return ErrRegistry.New(CodeUnknownAction)
}

func ErrUnknownSlot() *errx.Error {
	return ErrRegistry.New(CodeUnknownSlot)
}

func ErrInvalidFileFormat() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileFormat)
}

func ErrQueueUnavailable() *errx.Error {
	return ErrRegistry.New(CodeQueueUnavailable)
}
