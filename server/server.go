package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"orthos/config"
	"orthos/model"
)

type Server struct {
	cfg      config.Config
	upgrader websocket.Upgrader
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade: ", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.MaxMessageSize)

	hub := NewHub(s.cfg, conn)
	defer hub.stop()
	go hub.handleRequest()
	go hub.handleResponse()

	log.WithField("remote", r.RemoteAddr).Info("连接建立")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithField("remote", r.RemoteAddr).Warn("read: ", err)
			}
			break
		}
		hub.msg <- msg
	}
	log.WithField("remote", r.RemoteAddr).Info("连接关闭")
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Addr).Info("服务启动")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
