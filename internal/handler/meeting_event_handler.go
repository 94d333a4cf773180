package handler

import (
	"crm-meetings-be/internal/pkg/logger"
	"crm-meetings-be/internal/pkg/serverutils"
	"crm-meetings-be/internal/service"
	internalWS "crm-meetings-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MeetingEventHandler exposes the live event socket and the actor's activity
// trail.
type MeetingEventHandler struct {
	activityService service.IActivityService
	hub             *internalWS.Hub
	logger          logger.ILogger
}

func NewMeetingEventHandler(activityService service.IActivityService, hub *internalWS.Hub, log logger.ILogger) *MeetingEventHandler {
	return &MeetingEventHandler{
		activityService: activityService,
		hub:             hub,
		logger:          log,
	}
}

func (h *MeetingEventHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.ServeWs)

	activity := r.Group("/activity")
	activity.Use(serverutils.JwtMiddleware)
	activity.Get("", h.GetActivities)
}

// ServeWs upgrades the connection after verifying the caller's token. The
// token arrives as a query param because browsers cannot set headers on a
// websocket handshake; the Authorization header is accepted as a fallback for
// non-browser clients.
func (h *MeetingEventHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Authentication failed. Token missing."))
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(serverutils.JwtSecret()), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("MeetingEventHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Authentication failed. Invalid token."))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Authentication failed. Invalid claims."))
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Authentication failed. Invalid claims."))
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Authentication failed. Invalid claims."))
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("MeetingEventHandler", "WebSocket session started", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("MeetingEventHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// GetActivities returns the caller's meeting activity trail, newest first.
func (h *MeetingEventHandler) GetActivities(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Authentication failed. Invalid claims."))
	}

	activities, err := h.activityService.GetByActor(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(serverutils.SuccessResponse("Success get activities", activities))
}
