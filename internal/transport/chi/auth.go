package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// exemptPaths bypass authentication so probes and scrapers need no key.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

const bearerPrefix = "Bearer "

// BearerAuthMiddleware rejects requests without a valid "Authorization:
// Bearer <key>" header. With no non-empty keys it is a pass-through.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := make([][]byte, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token, problem := bearerToken(r)
			if problem == "" && !knownKey(keys, token) {
				problem = "invalid api key"
			}
			if problem != "" {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, problem)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token, or describes why the header is unusable.
func bearerToken(r *http.Request) (token, problem string) {
	auth := r.Header.Get("Authorization")
	switch {
	case auth == "":
		return "", "missing authorization header"
	case !strings.HasPrefix(auth, bearerPrefix):
		return "", "authorization header must use Bearer scheme"
	}
	return auth[len(bearerPrefix):], ""
}

// knownKey compares token against every key in constant time.
func knownKey(keys [][]byte, token string) bool {
	t := []byte(token)
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, t)
	}
	return found == 1
}
