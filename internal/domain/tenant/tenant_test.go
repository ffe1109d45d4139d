package tenant_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/okian/compass/internal/domain/tenant"
	. "github.com/smartystreets/goconvey/convey"
)

const testSecret = "test-secret"

// signToken builds an HS256 token with the given claims.
func signToken(secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return signed
}

func newRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/analyze", nil)
}

func TestClassifyPrecedence(t *testing.T) {
	classifier := tenant.NewClassifier(tenant.WithTokenSecret(testSecret))

	Convey("Given a request with no demo signal", t, func() {
		r := newRequest()

		Convey("Then it should classify as production with an anonymous user", func() {
			tc := classifier.Classify(r)
			So(tc.IsDemoMode, ShouldBeFalse)
			So(tc.TargetSchema, ShouldEqual, "production")
			So(tc.WritePrefix, ShouldBeEmpty)
			So(tc.UserID, ShouldEqual, tenant.AnonymousUser)
			So(tc.Signal, ShouldEqual, tenant.SignalNone)
		})
	})

	Convey("Given a request with the demo header set", t, func() {
		r := newRequest()
		r.Header.Set(tenant.HeaderDemoMode, "true")

		Convey("Then it should classify as demo via the header signal", func() {
			tc := classifier.Classify(r)
			So(tc.IsDemoMode, ShouldBeTrue)
			So(tc.TargetSchema, ShouldEqual, "demo")
			So(tc.WritePrefix, ShouldEqual, "demo_")
			So(tc.Signal, ShouldEqual, tenant.SignalHeader)
		})

		Convey("And the header should win even when a verified token says production", func() {
			r.Header.Set("Authorization", "Bearer "+signToken(testSecret, jwt.MapClaims{
				"sub":       "user-42",
				"demo_mode": false,
			}))

			tc := classifier.Classify(r)
			So(tc.IsDemoMode, ShouldBeTrue)
			So(tc.Signal, ShouldEqual, tenant.SignalHeader)

			Convey("While still resolving the user from the token", func() {
				So(tc.UserID, ShouldEqual, "user-42")
			})
		})
	})

	Convey("Given a request with a verified demo_mode token claim", t, func() {
		r := newRequest()
		r.Header.Set("Authorization", "Bearer "+signToken(testSecret, jwt.MapClaims{
			"sub":       "user-7",
			"demo_mode": true,
		}))

		Convey("Then it should classify as demo via the token signal", func() {
			tc := classifier.Classify(r)
			So(tc.IsDemoMode, ShouldBeTrue)
			So(tc.Signal, ShouldEqual, tenant.SignalToken)
			So(tc.UserID, ShouldEqual, "user-7")
		})
	})

	Convey("Given a request with an unverifiable token and a demo cookie", t, func() {
		r := newRequest()
		r.Header.Set("Authorization", "Bearer "+signToken("wrong-secret", jwt.MapClaims{
			"sub":       "user-9",
			"demo_mode": true,
		}))
		r.AddCookie(&http.Cookie{Name: tenant.CookieDemoMode, Value: "true"})

		Convey("Then the failed token should contribute no signal and the cookie should decide", func() {
			tc := classifier.Classify(r)
			So(tc.IsDemoMode, ShouldBeTrue)
			So(tc.Signal, ShouldEqual, tenant.SignalCookie)

			Convey("And the unverified subject should not be trusted", func() {
				So(tc.UserID, ShouldEqual, tenant.AnonymousUser)
			})
		})
	})

	Convey("Given a request with only a demo cookie", t, func() {
		r := newRequest()
		r.AddCookie(&http.Cookie{Name: tenant.CookieDemoMode, Value: "true"})

		Convey("Then it should classify as demo via the cookie signal", func() {
			tc := classifier.Classify(r)
			So(tc.IsDemoMode, ShouldBeTrue)
			So(tc.Signal, ShouldEqual, tenant.SignalCookie)
		})
	})

	Convey("Given a cookie with a non-true value", t, func() {
		r := newRequest()
		r.AddCookie(&http.Cookie{Name: tenant.CookieDemoMode, Value: "1"})

		Convey("Then it should classify as production", func() {
			So(classifier.Classify(r).IsDemoMode, ShouldBeFalse)
		})
	})

	Convey("Given a header with a non-true value", t, func() {
		r := newRequest()
		r.Header.Set(tenant.HeaderDemoMode, "TRUE")

		Convey("Then it should classify as production (value match is exact)", func() {
			So(classifier.Classify(r).IsDemoMode, ShouldBeFalse)
		})
	})
}

func TestClassifyTokenFailures(t *testing.T) {
	classifier := tenant.NewClassifier(tenant.WithTokenSecret(testSecret))

	Convey("Given an expired token with a demo claim", t, func() {
		r := newRequest()
		r.Header.Set("Authorization", "Bearer "+signToken(testSecret, jwt.MapClaims{
			"sub":       "user-3",
			"demo_mode": true,
			"exp":       time.Now().Add(-time.Hour).Unix(),
		}))

		Convey("Then it should classify as production with an anonymous user", func() {
			tc := classifier.Classify(r)
			So(tc.IsDemoMode, ShouldBeFalse)
			So(tc.UserID, ShouldEqual, tenant.AnonymousUser)
		})
	})

	Convey("Given a token signed with a non-HS256 algorithm", t, func() {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"demo_mode": true})
		signed, err := token.SignedString([]byte(testSecret))
		So(err, ShouldBeNil)

		r := newRequest()
		r.Header.Set("Authorization", "Bearer "+signed)

		Convey("Then it should be rejected", func() {
			So(classifier.Classify(r).IsDemoMode, ShouldBeFalse)
		})
	})

	Convey("Given a malformed bearer token", t, func() {
		r := newRequest()
		r.Header.Set("Authorization", "Bearer not-a-jwt")

		Convey("Then it should classify as production", func() {
			So(classifier.Classify(r).IsDemoMode, ShouldBeFalse)
		})
	})

	Convey("Given a valid demo token but no configured secret", t, func() {
		unverifying := tenant.NewClassifier()
		r := newRequest()
		r.Header.Set("Authorization", "Bearer "+signToken(testSecret, jwt.MapClaims{
			"demo_mode": true,
		}))

		Convey("Then the token signal should be disabled", func() {
			So(unverifying.Classify(r).IsDemoMode, ShouldBeFalse)
		})
	})

	Convey("Given a token with a non-boolean demo_mode claim", t, func() {
		r := newRequest()
		r.Header.Set("Authorization", "Bearer "+signToken(testSecret, jwt.MapClaims{
			"sub":       "user-5",
			"demo_mode": "true",
		}))

		Convey("Then the claim should be ignored but the subject kept", func() {
			tc := classifier.Classify(r)
			So(tc.IsDemoMode, ShouldBeFalse)
			So(tc.UserID, ShouldEqual, "user-5")
		})
	})
}

func TestClassifierOptions(t *testing.T) {
	Convey("Given a classifier with custom schemas and prefix", t, func() {
		classifier := tenant.NewClassifier(
			tenant.WithDemoSchema("sandbox"),
			tenant.WithProductionSchema("live"),
			tenant.WithWritePrefix("sbx_"),
		)

		Convey("When classifying a demo request", func() {
			r := newRequest()
			r.Header.Set(tenant.HeaderDemoMode, "true")
			tc := classifier.Classify(r)

			Convey("Then the custom demo settings should apply", func() {
				So(tc.TargetSchema, ShouldEqual, "sandbox")
				So(tc.WritePrefix, ShouldEqual, "sbx_")
			})
		})

		Convey("When classifying a production request", func() {
			tc := classifier.Classify(newRequest())

			Convey("Then the custom production schema should apply", func() {
				So(tc.TargetSchema, ShouldEqual, "live")
			})
		})
	})
}

func TestContextRoundTrip(t *testing.T) {
	Convey("Given a classification attached to a context", t, func() {
		tc := tenant.Context{IsDemoMode: true, TargetSchema: "demo", UserID: "u1", Signal: tenant.SignalHeader}
		ctx := tenant.NewContext(context.Background(), tc)

		Convey("Then it should be retrievable unchanged", func() {
			got, ok := tenant.FromContext(ctx)
			So(ok, ShouldBeTrue)
			So(got, ShouldResemble, tc)
		})
	})

	Convey("Given a bare context", t, func() {
		got, ok := tenant.FromContext(context.Background())

		Convey("Then retrieval should report absence with a zero value", func() {
			So(ok, ShouldBeFalse)
			So(got, ShouldResemble, tenant.Context{})
		})
	})
}
