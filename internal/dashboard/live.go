package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/sidebar"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client frame types.
const (
	msgNavigate      = "navigate"
	msgToggleSidebar = "toggle_sidebar"
	msgOpenDrawer    = "open_drawer"
	msgCloseDrawer   = "close_drawer"
)

// Server frame types.
const (
	msgRender = "render"
	msgLayout = "layout"
	msgError  = "error"
)

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type string `json:"type"`
	Hash string `json:"hash,omitempty"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type    string          `json:"type"`
	Session string          `json:"session"`
	Render  *Resolution     `json:"render,omitempty"`
	Sidebar *sidebar.Layout `json:"sidebar,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// session is one browser tab. Its location store mirrors the tab's hash and
// its drawer state dies with the connection.
type session struct {
	id     string
	conn   *websocket.Conn
	store  *navigation.MemoryStore
	drawer sidebar.Drawer

	writeMu sync.Mutex
}

func (s *session) send(m serverMessage) error {
	m.Session = s.id
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(m)
}

// handleWebSocket runs a live navigation session. The browser forwards
// every hashchange as a navigate frame; each resulting store notification
// is answered with exactly one render frame.
func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	sess := &session{
		id:    uuid.New().String(),
		conn:  conn,
		store: navigation.NewMemoryStore(d.parser, r.URL.Query().Get("hash")),
	}
	log := d.logger.With(zap.String("session", sess.id))

	unsubscribe := sess.store.Subscribe(func(st navigation.State) {
		res := d.Resolve(st, &sess.drawer)
		if err := sess.send(serverMessage{Type: msgRender, Render: &res}); err != nil {
			log.Debug("websocket write", zap.Error(err))
		}
	})
	defer unsubscribe()

	log.Debug("session opened", zap.String("path", sess.store.Current().Path))
	initial := d.Resolve(sess.store.Current(), &sess.drawer)
	if err := sess.send(serverMessage{Type: msgRender, Render: &initial}); err != nil {
		return
	}

	// The drawer resets on every navigation, whichever control started it.
	emitter := navigation.NewEmitter(sess.store).Within(sess.drawer.Close)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			log.Debug("session closed")
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			d.sendError(sess, "invalid message format")
			continue
		}

		switch msg.Type {
		case msgNavigate:
			if err := emitter.Emit(msg.Hash); err != nil {
				if errors.Is(err, navigation.ErrNavigationDuringNotify) {
					log.Warn("navigation rejected", zap.String("hash", msg.Hash))
				}
				d.sendError(sess, err.Error())
			}
		case msgToggleSidebar:
			// A failed write is logged by the controller; the toggle still applies.
			_, _ = d.sidebar.Toggle(r.Context())
			d.sendLayout(sess)
		case msgOpenDrawer:
			sess.drawer.Open()
			d.sendLayout(sess)
		case msgCloseDrawer:
			sess.drawer.Close()
			d.sendLayout(sess)
		default:
			d.sendError(sess, "unknown message type: "+msg.Type)
		}
	}
}

func (d *Dashboard) sendLayout(sess *session) {
	layout := sidebar.Snapshot(d.sidebar, &sess.drawer)
	if err := sess.send(serverMessage{Type: msgLayout, Sidebar: &layout}); err != nil {
		d.logger.Debug("websocket write", zap.Error(err))
	}
}

func (d *Dashboard) sendError(sess *session, message string) {
	if err := sess.send(serverMessage{Type: msgError, Error: message}); err != nil {
		d.logger.Debug("websocket write error", zap.Error(err))
	}
}
