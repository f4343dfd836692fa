package report

import (
	"net/http"

	"github.com/Abraxas-365/counsel/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("REPORT")

// Error codes
var (
	CodeRenderFailed = ErrRegistry.Register("RENDER_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Report rendering failed")
	CodeStoreFailed  = ErrRegistry.Register("STORE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Report could not be stored")
)

// Helper functions
func ErrRenderFailed() *errx.Error {
	return ErrRegistry.New(CodeRenderFailed)
}

func ErrStoreFailed() *errx.Error {
	return ErrRegistry.New(CodeStoreFailed)
}
