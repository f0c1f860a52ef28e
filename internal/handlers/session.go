package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"health-portal-server/internal/config"
	"health-portal-server/internal/middleware"
	"health-portal-server/internal/session"
	"health-portal-server/internal/utils"
)

// SessionHandler handles session, auth-state and notification requests.
type SessionHandler struct {
	Store *session.Store
	Cfg   *config.Config
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store *session.Store, cfg *config.Config) *SessionHandler {
	return &SessionHandler{Store: store, Cfg: cfg}
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID string            `json:"sessionId"`
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Auth      session.AuthState `json:"auth"`
}

// CreateSession starts a new session with every page in its initial state.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	s := h.Store.Create()

	token, expiresAt, err := utils.GenerateSessionToken(s.ID, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to issue session token: "+err.Error())
		return
	}

	var auth session.AuthState
	s.Use(func(st *session.State) { auth = st.Auth.State() })

	utils.Created(c, "Session created", SessionResponse{
		SessionID: s.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		Auth:      auth,
	})
}

// GetAuth returns the session's auth state.
func (h *SessionHandler) GetAuth(c *gin.Context) {
	s, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var auth session.AuthState
	s.Use(func(st *session.State) { auth = st.Auth.State() })
	utils.Success(c, "Auth state fetched", auth)
}

// Login moves the session's auth context to authenticated.
func (h *SessionHandler) Login(c *gin.Context) {
	h.transition(c, "Logged in", func(a *session.AuthContext, now time.Time) { a.Login(now) })
}

// Logout moves the session's auth context to anonymous.
func (h *SessionHandler) Logout(c *gin.Context) {
	h.transition(c, "Logged out", func(a *session.AuthContext, now time.Time) { a.Logout(now) })
}

func (h *SessionHandler) transition(c *gin.Context, message string, fn func(*session.AuthContext, time.Time)) {
	s, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var auth session.AuthState
	s.Use(func(st *session.State) {
		fn(&st.Auth, time.Now())
		auth = st.Auth.State()
	})
	utils.Success(c, message, auth)
}

// GetNotifications drains the session's pending notifications.
func (h *SessionHandler) GetNotifications(c *gin.Context) {
	s, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	utils.Success(c, "Notifications fetched", s.Notifications.Drain())
}

func sessionOrAbort(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.GetSessionFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Session not found in context. SessionMiddleware might be missing.")
		c.Abort()
		return nil, false
	}
	return s, true
}
