package network

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/hook-miner/engine"
)

var timeNow = time.Now

// client is one websocket subscriber
type client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	format Format
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the request and attaches a subscriber
// The first frame is initial when it is non-nil
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request, initial *engine.Snapshot) {
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, max(h.config.SendQueueSize, 1)),
		format: format,
	}

	if initial != nil {
		if data, err := Encode(format, Frame{Type: "snapshot", Snapshot: initial}); err == nil {
			c.send <- data
		}
	}

	h.register(c)
	go c.writePump()
	go c.readPump()
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	cfg := c.hub.config
	c.conn.SetReadLimit(cfg.MaxMessageSize)
	c.conn.SetReadDeadline(timeNow().Add(cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(timeNow().Add(cfg.PongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug().Err(err).Msg("subscriber read error")
			}
			return
		}

		cmd, err := DecodeCommand(c.format, message)
		if err != nil {
			c.hub.log.Debug().Err(err).Msg("bad command")
			continue
		}
		if c.hub.sink != nil {
			c.hub.sink.Submit(cmd)
		}
	}
}

func (c *client) writePump() {
	cfg := c.hub.config
	ticker := time.NewTicker(cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(timeNow().Add(cfg.WriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(c.format.MessageType(), message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(timeNow().Add(cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
