// Package tenant classifies inbound requests as demo or production and
// carries the resolved classification on the request context.
//
// Classification never fails: every branch has a defined fallback toward
// production mode and an anonymous user.
package tenant

import (
	"context"
	"net/http"
)

// Request surface consumed by the classifier.
const (
	// HeaderDemoMode forces demo mode when set to the literal "true".
	HeaderDemoMode = "X-Demo-Mode"
	// CookieDemoMode selects demo mode when its value is "true".
	CookieDemoMode = "demo_mode"
	// AnonymousUser is the resolved user identifier when no token subject is present.
	AnonymousUser = "anonymous"
)

// Signal identifies which check classified a request as demo.
type Signal string

// Signal values, in decision order.
const (
	SignalNone   Signal = "none"
	SignalHeader Signal = "header"
	SignalToken  Signal = "token"
	SignalCookie Signal = "cookie"
)

// Context is the per-request classification result. It is constructed at
// request entry, consumed by downstream handlers, and discarded with the
// request; nothing here is persisted.
type Context struct {
	// IsDemoMode reports whether the request targets the demo partition.
	IsDemoMode bool
	// TargetSchema names the logical data partition subsequent queries address.
	TargetSchema string
	// WritePrefix is prepended to names created in demo mode; empty otherwise.
	WritePrefix string
	// UserID is the token subject, or AnonymousUser.
	UserID string
	// Signal records which check produced the demo classification.
	Signal Signal
}

// Classifier resolves the demo/production mode of inbound requests.
type Classifier struct {
	demoSchema       string
	productionSchema string
	writePrefix      string
	tokenSecret      []byte
}

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithDemoSchema sets the schema name demo requests target.
func WithDemoSchema(schema string) Option {
	return func(c *Classifier) {
		if schema != "" {
			c.demoSchema = schema
		}
	}
}

// WithProductionSchema sets the schema name production requests target.
func WithProductionSchema(schema string) Option {
	return func(c *Classifier) {
		if schema != "" {
			c.productionSchema = schema
		}
	}
}

// WithWritePrefix sets the naming prefix applied to demo-mode writes.
func WithWritePrefix(prefix string) Option {
	return func(c *Classifier) {
		c.writePrefix = prefix
	}
}

// WithTokenSecret sets the HS256 secret for bearer-token verification.
// An empty secret disables the token signal entirely.
func WithTokenSecret(secret string) Option {
	return func(c *Classifier) {
		if secret != "" {
			c.tokenSecret = []byte(secret)
		}
	}
}

// NewClassifier creates a classifier with default schema names.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		demoSchema:       "demo",
		productionSchema: "production",
		writePrefix:      "demo_",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Classify resolves the mode of r. Decision order, first match wins:
// demo header, verified token claim, demo cookie, default production.
// A token that fails verification contributes no signal and the cookie
// check still runs.
func (c *Classifier) Classify(r *http.Request) Context {
	tok := c.inspectToken(bearerToken(r))

	userID := AnonymousUser
	if tok.subject != "" {
		userID = tok.subject
	}

	signal := SignalNone
	switch {
	case r.Header.Get(HeaderDemoMode) == "true":
		signal = SignalHeader
	case tok.demo:
		signal = SignalToken
	case cookieValue(r, CookieDemoMode) == "true":
		signal = SignalCookie
	}

	if signal == SignalNone {
		return Context{
			TargetSchema: c.productionSchema,
			UserID:       userID,
			Signal:       SignalNone,
		}
	}
	return Context{
		IsDemoMode:   true,
		TargetSchema: c.demoSchema,
		WritePrefix:  c.writePrefix,
		UserID:       userID,
		Signal:       signal,
	}
}

// cookieValue returns the named cookie's value, or empty when absent.
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ctxKey is the private context key for the classification result.
type ctxKey struct{}

// NewContext attaches the classification result to ctx.
func NewContext(ctx context.Context, tc Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, tc)
}

// FromContext retrieves the classification result attached by NewContext.
// The zero Context (production, anonymous) is returned when absent.
func FromContext(ctx context.Context) (Context, bool) {
	tc, ok := ctx.Value(ctxKey{}).(Context)
	return tc, ok
}
