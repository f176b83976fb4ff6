package scribe

import (
	"bytes"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/goliatone/go-logger/glog"
	"github.com/gorilla/websocket"
)

const liveReloadPath = "/__livereload"

const liveReloadScript = `<script>
(function () {
	var ws = new WebSocket("ws://" + location.host + "` + liveReloadPath + `");
	ws.onmessage = function (ev) {
		var msg = JSON.parse(ev.data);
		if (msg.type === "RELOAD") {
			location.reload();
		}
	};
})();
</script>
`

// DevServer serves the output directory and reloads connected browsers after
// every rebuild. HTML responses get a small websocket script injected before
// the closing body tag.
type DevServer struct {
	dir      string
	log      glog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

func NewDevServer(dir string, log glog.Logger) *DevServer {
	if log == nil {
		log = NewLogger("info").GetLogger("serve")
	}
	return &DevServer{
		dir:     dir,
		log:     log,
		clients: make(map[*websocket.Conn]bool),
	}
}

func (s *DevServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(liveReloadPath, s.handleWebSocket)
	mux.HandleFunc("/", s.serveFile)
	return mux
}

func (s *DevServer) ListenAndServe(addr string) error {
	s.log.Info("serving site", "dir", s.dir, "addr", "http://"+addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *DevServer) serveFile(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean(r.URL.Path)
	fsPath := filepath.Join(s.dir, filepath.FromSlash(urlPath))

	if info, err := os.Stat(fsPath); err == nil && info.IsDir() {
		fsPath = filepath.Join(fsPath, "index.html")
	}

	if filepath.Ext(fsPath) != ".html" {
		http.ServeFile(w, r, fsPath)
		return
	}

	page, err := os.ReadFile(fsPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(injectLiveReload(page))
}

// injectLiveReload splices the reload script in before </body>, or appends
// it when the page has no closing body tag.
func injectLiveReload(page []byte) []byte {
	marker := []byte("</body>")
	if i := bytes.LastIndex(page, marker); i != -1 {
		out := make([]byte, 0, len(page)+len(liveReloadScript))
		out = append(out, page[:i]...)
		out = append(out, liveReloadScript...)
		out = append(out, page[i:]...)
		return out
	}
	return append(append([]byte{}, page...), liveReloadScript...)
}

func (s *DevServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	for {
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Debug("websocket closed", "error", err)
			}
			return
		}
	}
}

// NotifyReload broadcasts a reload message to every connected client.
func (s *DevServer) NotifyReload() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for client := range s.clients {
		if err := client.WriteJSON(map[string]any{"type": "RELOAD"}); err != nil {
			s.log.Warn("failed to notify client", "error", err)
		}
	}
}

// ClientCount reports the number of connected live reload clients.
func (s *DevServer) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
