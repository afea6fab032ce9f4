package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The reel stream is read-only and carries no credentials.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Register mounts the reel stream endpoint.
func (h *Hub) Register(e *echo.Echo) {
	e.GET("/v1/reel", h.serve)
}

func (h *Hub) serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	cl := &client{conn: conn, out: make(chan Frame, clientBuffer)}
	h.register(cl)
	go cl.writePump()
	go cl.readPump(h)
	return nil
}
