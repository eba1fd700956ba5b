package ws

import (
	"errors"
	"net/http"
	"strings"

	"roadtrip-career/internal/delivery/http/middleware"
	"roadtrip-career/internal/logger"
	"roadtrip-career/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	logger *zap.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, log *zap.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, logger: logger.OrNop(log).With(zap.String("component", "ws"))}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleReadinessWS authenticates with the access token from the "token"
// query parameter or the Authorization header, then upgrades the connection
// and subscribes it to the user's readiness updates.
func (h *Handler) HandleReadinessWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.jwt == nil {
		return fiber.ErrServiceUnavailable
	}

	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		token, _ = middleware.BearerToken(c.Get("Authorization"))
	}
	if token == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	claims, err := h.jwt.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		}
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}
	userID := claims.UserID

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r, userID)
	})(c)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.String(logger.FieldUserID, userID.String()), zap.Error(err))
		return
	}

	client := NewClient(h.hub, conn, userID)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
