package career

import (
	"net/http"

	"github.com/Abraxas-365/counsel/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CAREER")

// Error codes
var (
	CodeInvalidCatalog      = ErrRegistry.Register("INVALID_CATALOG", errx.TypeInternal, http.StatusInternalServerError, "Career catalog definition is invalid")
	CodeInsufficientProfile = ErrRegistry.Register("INSUFFICIENT_PROFILE", errx.TypeValidation, http.StatusBadRequest, "Not enough profile information to score")
	CodeUnknownDomain       = ErrRegistry.Register("UNKNOWN_DOMAIN", errx.TypeInternal, http.StatusInternalServerError, "Career domain is not present in the catalog")
)

// Helper functions
func ErrInvalidCatalog() *errx.Error {
	return ErrRegistry.New(CodeInvalidCatalog)
}

func ErrInsufficientProfile() *errx.Error {
	return ErrRegistry.New(CodeInsufficientProfile)
}

func ErrUnknownDomain() *errx.Error {
	return ErrRegistry.New(CodeUnknownDomain)
}
