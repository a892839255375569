// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/request"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/response"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/validation"
)

// ValidateCurrencyMiddleware validates that the currency URL parameter is present
// and well formed. Returns 400 Bad Request otherwise.
// Whether the currency is a column of the rate table is left to the handler.
//
// Example usage in router:
//
//	r.Route("/{currency}", func(r chi.Router) {
//	    r.Use(middleware.ValidateCurrencyMiddleware)
//	    r.Get("/", handler.Dashboard)
//	})
func ValidateCurrencyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		currency := request.CurrencyParam(r)

		if currency == "" {
			response.RespondError(w, http.StatusBadRequest, "currency is required", "")
			return
		}

		if err := validation.ValidateCurrency(currency); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid currency", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
