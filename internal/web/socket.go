package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"calcpad/internal/domain"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum key event size allowed from peer.
	maxMessageSize = 1024
)

// socketClient is one websocket attached to a session. Key events are applied
// in arrival order and each is answered with one SocketReply.
type socketClient struct {
	server *Server
	id     domain.SessionID
	conn   *websocket.Conn
	send   chan domain.SocketReply
	closed chan struct{}
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := s.signer.Verify(ps.ByName("token"))
	if err != nil {
		s.writeError(w, err, nil)
		return
	}
	found, _ := s.sessions.WithSession(id, func(domain.CalculatorService) error { return nil })
	if !found {
		s.writeError(w, ErrSessionNotFound, nil)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &socketClient{
		server: s,
		id:     id,
		conn:   conn,
		send:   make(chan domain.SocketReply, 16),
		closed: make(chan struct{}),
	}
	s.log.Debug("websocket attached", zap.Stringer("session", id))

	go c.writePump()
	c.readPump()
	<-c.closed
}

// readPump applies inbound key events until the connection fails, the
// session disappears or the write side stops.
func (c *socketClient) readPump() {
	defer close(c.send)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.server.log.Debug("websocket read error", zap.Error(err))
			}
			return
		}

		reply, alive := c.apply(message)
		select {
		case c.send <- reply:
		case <-c.closed:
			return
		}
		if !alive {
			return
		}
	}
}

// apply handles one raw key event. It reports false once the session is gone.
func (c *socketClient) apply(message []byte) (domain.SocketReply, bool) {
	var key domain.Key
	keyErr := json.Unmarshal(message, &key)
	if keyErr != nil {
		keyErr = badRequest("decode key: %v", keyErr)
	}

	var reply domain.SocketReply
	found, err := c.server.sessions.WithSession(c.id, func(calc domain.CalculatorService) error {
		defer func() { reply.Snapshot = calc.Snapshot() }()
		if keyErr != nil {
			return keyErr
		}
		result, err := pressKey(calc, key)
		reply.Result = result
		return err
	})
	if !found {
		err = ErrSessionNotFound
	}
	if err != nil {
		_, kind := classify(err)
		reply.Error = err.Error()
		reply.Kind = kind
	}
	return reply, found
}

// writePump sends replies and keepalive pings until send is closed, a write
// fails or the server shuts down.
func (c *socketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
		close(c.closed)
	}()

	for {
		select {
		case reply, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(reply); err != nil {
				c.server.log.Debug("websocket write failed", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.server.quit:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}
