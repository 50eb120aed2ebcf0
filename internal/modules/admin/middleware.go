package admin

import (
	"net/http"
	"strings"

	"github.com/amherst-artisan-market/market-backend/internal/common"
	"github.com/amherst-artisan-market/market-backend/internal/web"
)

// RequireAdmin guards the admin dashboard routes behind a bearer session
// token.
func RequireAdmin(service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				web.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil), "")
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				web.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil), "")
				return
			}
			if err := service.Verify(parts[1]); err != nil {
				web.Error(w, err, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
