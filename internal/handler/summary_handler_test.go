package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"staffhub/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newWebSocketTestRouter(requester *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewSummaryHandler(nil, nil)

	router := gin.New()
	router.GET("/summaries/ws", func(c *gin.Context) {
		c.Set("requester", requester)
		c.Next()
	}, h.HandleWebSocket)

	return router
}

func TestWebSocketRoleGate(t *testing.T) {
	cases := []struct {
		name string
		role string
		want int
	}{
		// Admins and PMs pass the role gate; with no redis configured the
		// handler then reports live updates as unavailable.
		{"admin", model.RoleAdmin, http.StatusServiceUnavailable},
		{"pm", model.RolePM, http.StatusServiceUnavailable},
		{"employee", model.RoleEmployee, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newWebSocketTestRouter(&model.User{Role: tc.role})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/summaries/ws", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
