package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pawcare-backend/logger"
	"pawcare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "pawcare.sid"
	contextKey = "session"

	unauthorizedMessage = "Unauthorized. Please login."
)

type Options struct {
	Secret      string
	Secure      bool // production: Secure cookie, SameSite=Strict
	TTL         time.Duration
	RememberTTL time.Duration
}

// Session is the state attached to the current request.
type Session struct {
	Token string
	Data  Data
}

// Manager binds a Store to gin requests through the session cookie.
type Manager struct {
	store  Store
	secret []byte
	opts   Options
	log    logger.Logger
}

func NewManager(store Store, opts Options, log logger.Logger) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(opts.Secret),
		opts:   opts,
		log:    log,
	}
}

func (m *Manager) Store() Store {
	return m.store
}

// Middleware loads the session named by the cookie, if any, into the request.
// Cookies that fail signature checks are ignored.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := &Session{}
		if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
			if token, err := m.parse(raw); err == nil {
				data, err := m.store.Get(c.Request.Context(), token)
				if err != nil {
					m.log.Error("load session", logger.Fields{"error": err})
				} else if data != nil {
					sess = &Session{Token: token, Data: *data}
				}
			}
		}
		c.Set(contextKey, sess)
		c.Next()
	}
}

// Current returns the session of the request; an empty one when none is loaded.
func Current(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	sess := &Session{}
	c.Set(contextKey, sess)
	return sess
}

// Save persists data under the current token, creating one if needed, and
// refreshes the cookie.
func (m *Manager) Save(c *gin.Context, data Data) error {
	sess := Current(c)
	if sess.Token == "" {
		sess.Token = uuid.NewString()
	}
	return m.write(c, sess, data)
}

// Renew stores data under a fresh token and drops the old one. Used on login
// so a pre-login token never becomes an authenticated one.
func (m *Manager) Renew(c *gin.Context, data Data) error {
	sess := Current(c)
	if sess.Token != "" {
		if err := m.store.Destroy(c.Request.Context(), sess.Token); err != nil {
			return err
		}
	}
	sess.Token = uuid.NewString()
	return m.write(c, sess, data)
}

// Destroy removes the session and expires the cookie.
func (m *Manager) Destroy(c *gin.Context) error {
	sess := Current(c)
	if sess.Token != "" {
		if err := m.store.Destroy(c.Request.Context(), sess.Token); err != nil {
			return err
		}
	}
	*sess = Session{}
	m.setCookie(c, "", -1)
	return nil
}

func (m *Manager) write(c *gin.Context, sess *Session, data Data) error {
	ttl := m.opts.TTL
	if data.Remember {
		ttl = m.opts.RememberTTL
	}

	if err := m.store.Set(c.Request.Context(), sess.Token, data, ttl); err != nil {
		return err
	}
	signed, err := m.sign(sess.Token, ttl)
	if err != nil {
		return err
	}
	sess.Data = data
	m.setCookie(c, signed, int(ttl.Seconds()))
	return nil
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	if m.opts.Secure {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(CookieName, value, maxAge, "/", "", m.opts.Secure, true)
}

func (m *Manager) sign(token string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        token,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", fmt.Errorf("session cookie without token")
	}
	return claims.ID, nil
}

// RequireAdmin lets the request through only when the admin identity is set.
func (m *Manager) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Current(c).Data.AdminAuthenticated {
			utils.RespondWithError(c, http.StatusUnauthorized, unauthorizedMessage)
			return
		}
		c.Next()
	}
}

// RequireCustomer lets the request through only when the customer identity is set.
func (m *Manager) RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := Current(c).Data
		if !data.CustomerAuthenticated || data.CustomerID == 0 {
			utils.RespondWithError(c, http.StatusUnauthorized, unauthorizedMessage)
			return
		}
		c.Next()
	}
}
