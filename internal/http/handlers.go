package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/haseebk/dev-net/internal/github"
	"github.com/haseebk/dev-net/internal/repo"
	"github.com/haseebk/dev-net/internal/service"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Auth            *service.AuthService
	Profiles        *service.ProfileService
	Github          *github.Client
	Store           Pinger
	JWTSecret       string
	Redis           *repo.Redis
	RateLimitPerMin int
}

func NewHandler(auth *service.AuthService, profiles *service.ProfileService, gh *github.Client, store Pinger, jwtSecret string, rds *repo.Redis, rlPerMin int) *Handler {
	return &Handler{
		Auth:            auth,
		Profiles:        profiles,
		Github:          gh,
		Store:           store,
		JWTSecret:       jwtSecret,
		Redis:           rds,
		RateLimitPerMin: rlPerMin,
	}
}

// identity converts the uid set by AuthJWT into a service identity. A token
// whose uid is not a valid object id never authorizes anything.
func identity(c *gin.Context) (service.Identity, bool) {
	oid, err := primitive.ObjectIDFromHex(c.GetString(uidKey))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return service.Identity{}, false
	}
	return service.Identity{UserID: oid}, true
}

func reqID(c *gin.Context) string { return c.GetString(reqIDKey) }

// Register godoc
// @Summary Register user
// @Tags users
// @Accept json
// @Produce json
// @Param payload body service.RegisterInput true "register"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]string
// @Router /api/users [post]
func (h *Handler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	tok, err := h.Auth.Register(c.Request.Context(), in, reqID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": tok})
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body service.LoginInput true "login"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth [post]
func (h *Handler) Login(c *gin.Context) {
	var in service.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	tok, err := h.Auth.Login(c.Request.Context(), in, reqID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Router /api/auth [get]
func (h *Handler) Me(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	u, err := h.Auth.CurrentUser(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) Healthz(c *gin.Context) {
	if h.Store != nil {
		if err := h.Store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
