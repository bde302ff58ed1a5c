package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "token"

	DefaultSessionTTL = 7 * 24 * time.Hour

	principalKey = "principal"
)

var (
	ErrLoginRequired  = errs.NewUnauthenticatedError("You need to login first to access this resource.")
	ErrInvalidToken   = errs.NewUnauthenticatedError("Invalid token. Please log in again.")
	ErrSessionExpired = errs.NewUnauthenticatedError("Session expired. Please log in again.")
	ErrAdminsOnly     = errs.NewAccessDeniedError("Access denied. Admins only.")
)

// Principal is the caller identity recovered from a session token.
type Principal struct {
	UserID kernel.UUID
	Role   user.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwtSecret")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue returns a signed token for the user and its expiry.
func (t *TokenIssuer) Issue(userID kernel.UUID, role user.Role) (string, time.Time, error) {
	issuedAt := t.now()
	expiresAt := issuedAt.Add(t.ttl)
	claims := sessionClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (t *TokenIssuer) Parse(raw string) (Principal, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Principal{}, ErrSessionExpired
	case err != nil:
		return Principal{}, ErrInvalidToken
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}
	return Principal{UserID: userID, Role: role}, nil
}

// CookieSettings controls the attributes of the session cookie.
type CookieSettings struct {
	Secure bool
}

func (s CookieSettings) session(token string, expiresAt time.Time, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.Secure {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

func (s CookieSettings) cleared() *http.Cookie {
	cookie := s.session("", time.Unix(0, 0), 0)
	cookie.MaxAge = -1
	return cookie
}

// requireAuth reads the session from the cookie, falling back to a bearer header.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := ""
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			raw = cookie.Value
		}
		if raw == "" {
			if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
				raw = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			}
		}
		if raw == "" {
			return ErrLoginRequired
		}

		p, err := s.tokens.Parse(raw)
		if err != nil {
			return err
		}
		c.Set(principalKey, p)
		return next(c)
	}
}

func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !principal(c).IsAdmin() {
			return ErrAdminsOnly
		}
		return next(c)
	}
}

func principal(c echo.Context) Principal {
	p, _ := c.Get(principalKey).(Principal)
	return p
}

func (s *Server) startSession(c echo.Context, userID kernel.UUID, role user.Role) (string, error) {
	token, expiresAt, err := s.tokens.Issue(userID, role)
	if err != nil {
		return "", err
	}
	c.SetCookie(s.cookies.session(token, expiresAt, s.tokens.TTL()))
	return token, nil
}
