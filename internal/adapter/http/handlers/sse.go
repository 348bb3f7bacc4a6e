package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

const sseHeartbeatInterval = 30 * time.Second

// streamEvents writes every value of updates as a server-sent event until the
// channel closes or the client goes away. Live query channels close on their
// own once the request context is done.
func streamEvents[T any](c *gin.Context, event string, updates <-chan T, render func(T) any) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(sseHeartbeatInterval)
	defer ticker.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case <-ticker.C:
			c.SSEvent("heartbeat", gin.H{"time": time.Now().Unix()})
			c.Writer.Flush()
		case v, ok := <-updates:
			if !ok {
				return
			}
			c.SSEvent(event, render(v))
			c.Writer.Flush()
		}
	}
}
