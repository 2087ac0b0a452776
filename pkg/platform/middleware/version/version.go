// Package version tags requests with the API version of the route group that
// served them.
package version

import (
	"net/http"

	"memberreg/pkg/domain"
	"memberreg/pkg/requestcontext"
)

// ExtractVersion records v in the request context. chi has already matched
// the version prefix by the time this runs:
//
//	r.Route(domain.APIVersionV1.Prefix(), func(v1 chi.Router) {
//	    v1.Use(version.ExtractVersion(domain.APIVersionV1))
//	})
func ExtractVersion(v domain.APIVersion) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithAPIVersion(r.Context(), v)
			w.Header().Set("X-API-Version", v.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
