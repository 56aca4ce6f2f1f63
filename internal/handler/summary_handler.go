package handler

import (
	"net/http"

	"staffhub/internal/model"
	"staffhub/internal/service"
	"staffhub/pkg/apperror"
	"staffhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type SummaryHandler struct {
	service     service.HoursService
	redisClient *redis.Client
	upgrader    websocket.Upgrader
}

func NewSummaryHandler(service service.HoursService, redisClient *redis.Client) *SummaryHandler {
	return &SummaryHandler{
		service:     service,
		redisClient: redisClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// TeamHours returns the aggregated working-hours rows visible to the
// requester: a PM sees their own team, an admin sees every team.
func (h *SummaryHandler) TeamHours(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows, err := h.service.TeamHours(c.Request.Context(), requester)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": rows})
}

// HandleWebSocket streams recomputed summary rows as they happen: a PM gets
// their own team's channel, an admin every team's. Rows are published to
// redis by the hours service; this endpoint just bridges them onto the
// socket.
func (h *SummaryHandler) HandleWebSocket(c *gin.Context) {
	requester, err := response.GetRequester(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if requester.Role != model.RolePM && requester.Role != model.RoleAdmin {
		response.Error(c, apperror.ErrPermissionDenied)
		return
	}

	if h.redisClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live updates unavailable"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("failed to upgrade websocket")
		return
	}
	defer conn.Close()

	var pubsub *redis.PubSub
	if requester.Role == model.RoleAdmin {
		pubsub = h.redisClient.PSubscribe(c.Request.Context(), service.TeamHoursPattern())
	} else {
		pubsub = h.redisClient.Subscribe(c.Request.Context(), service.TeamHoursChannel(requester.ID))
	}
	defer pubsub.Close()

	if _, err := pubsub.Receive(c.Request.Context()); err != nil {
		logrus.WithError(err).Warn("failed to subscribe to team hours channel")
		return
	}

	ch := pubsub.Channel()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-ch:
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
