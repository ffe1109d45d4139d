package tenant

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// tokenOutcome is the result of inspecting a bearer token. Verification
// failure is not an error here: a failed token simply carries no demo
// signal and classification proceeds to the next check.
type tokenOutcome struct {
	// demo is true only for a verified token whose demo_mode claim is true.
	demo bool
	// subject is the verified token's sub claim, empty otherwise.
	subject string
}

// inspectToken verifies raw as an HS256 token and extracts the demo_mode
// claim and subject. Any failure (absent token, no configured secret,
// malformed, expired, bad signature, wrong algorithm) yields the zero
// outcome.
func (c *Classifier) inspectToken(raw string) tokenOutcome {
	if raw == "" || len(c.tokenSecret) == 0 {
		return tokenOutcome{}
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return c.tokenSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return tokenOutcome{}
	}

	out := tokenOutcome{}
	if sub, err := claims.GetSubject(); err == nil {
		out.subject = sub
	}
	if v, ok := claims["demo_mode"].(bool); ok {
		out.demo = v
	}
	return out
}

// bearerToken extracts the bearer token from the Authorization header,
// or empty when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return auth[len(prefix):]
}
