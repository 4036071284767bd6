package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/budgetms/budgetvote/pkg/ctxutil"
)

// requestIDHeader is the header a caller or proxy may use to supply its own
// correlation ID; the same header carries it back on the response.
const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a correlation ID. An incoming ID is
// reused so a voting client's retries can be stitched together in the logs;
// otherwise one is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
