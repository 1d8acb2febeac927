package web

import (
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"sand-ca/internal/sims/sand"
)

// command is the JSON message browsers send to mutate the world.
type command struct {
	Type     string `json:"type"`
	X1       int    `json:"x1"`
	Y1       int    `json:"y1"`
	X2       int    `json:"x2"`
	Y2       int    `json:"y2"`
	Radius   int    `json:"radius"`
	Material uint8  `json:"material"`
	Tint     uint8  `json:"tint"`
	Spread   uint8  `json:"spread"`
	Seed     int64  `json:"seed"`
}

// Server hosts the simulation headlessly and streams frames to websocket
// clients at a fixed tick rate. The world is guarded by a single mutex;
// the tick loop and every client reader go through it.
type Server struct {
	world *sand.World
	tps   int

	mu sync.Mutex

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex

	upgrader websocket.Upgrader
}

// NewServer wraps a world for serving at the given tick rate.
func NewServer(world *sand.World, tps int) *Server {
	if tps <= 0 {
		tps = 60
	}
	return &Server{
		world:   world,
		tps:     tps,
		clients: map[*websocket.Conn]*sync.Mutex{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ListenAndServe starts the tick loop and blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveHome)
	mux.HandleFunc("/ws", s.handleWebSocket)

	go s.loop()

	return http.ListenAndServe(addr, mux)
}

func (s *Server) loop() {
	ticker := time.NewTicker(time.Second / time.Duration(s.tps))
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		s.world.Step()
		frame := s.encodeLocked()
		s.mu.Unlock()

		s.broadcast(frame)
	}
}

func (s *Server) encodeLocked() []byte {
	return EncodeFrame(s.world.Size(), s.world.Materials(), s.world.Tints())
}

func (s *Server) broadcast(frame []byte) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	for conn, mu := range s.clients {
		mu.Lock()
		err := conn.WriteMessage(websocket.BinaryMessage, frame)
		mu.Unlock()
		if err != nil {
			conn.Close()
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade:", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	s.mu.Lock()
	frame := s.encodeLocked()
	s.mu.Unlock()
	connMu.Lock()
	err = conn.WriteMessage(websocket.BinaryMessage, frame)
	connMu.Unlock()
	if err != nil {
		return
	}

	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}
		s.apply(cmd)
	}
}

func (s *Server) apply(cmd command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch cmd.Type {
	case "paint":
		s.world.Paint(cmd.X1, cmd.Y1, cmd.X2, cmd.Y2, cmd.Radius,
			sand.Material(cmd.Material), sand.Tint(cmd.Tint), cmd.Spread)
	case "place":
		s.world.Place(cmd.X1, cmd.Y1,
			sand.Material(cmd.Material), sand.Tint(cmd.Tint), cmd.Spread)
	case "reset":
		s.world.Reset(cmd.Seed)
	}
}

func (s *Server) serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>sand-ca</title><style>body{background:#111;margin:0}canvas{image-rendering:pixelated;display:block;margin:16px auto}</style></head>
<body>
<canvas id="view"></canvas>
<script>
const palette = [
  [[24,24,28],[20,20,24],[17,17,20],[13,13,15]],
  [[110,108,100],[94,92,85],[77,76,70],[61,59,55]],
  [[214,174,96],[182,148,82],[150,122,67],[118,96,53]],
  [[52,120,220],[44,102,187],[36,84,154],[29,66,121]],
  [[182,182,190],[155,155,162],[127,127,133],[100,100,105]],
];
const canvas = document.getElementById("view");
const ctx = canvas.getContext("2d");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "arraybuffer";
let w = 0, h = 0, img = null;
ws.onmessage = (ev) => {
  const data = new Uint8Array(ev.data);
  const view = new DataView(ev.data);
  w = view.getUint32(0, true);
  h = view.getUint32(4, true);
  if (canvas.width !== w) { canvas.width = w; canvas.height = h; canvas.style.width = (w*3)+"px"; img = ctx.createImageData(w, h); }
  const total = w * h;
  for (let i = 0; i < total; i++) {
    const col = palette[data[8+i]][data[8+total+i]];
    img.data[i*4+0] = col[0];
    img.data[i*4+1] = col[1];
    img.data[i*4+2] = col[2];
    img.data[i*4+3] = 255;
  }
  ctx.putImageData(img, 0, 0);
};
let last = null;
const spreads = {2: 2, 3: 5, 4: 5};
let material = 2;
document.addEventListener("keydown", (e) => {
  if (e.key >= "1" && e.key <= "5") material = [2,3,4,1,0][e.key-1];
  if (e.key === "r") ws.send(JSON.stringify({type:"reset",seed:0}));
});
canvas.addEventListener("mousemove", (e) => {
  if (!(e.buttons & 1) || w === 0) { last = null; return; }
  const rect = canvas.getBoundingClientRect();
  const x = Math.floor((e.clientX-rect.left)/rect.width*w);
  const y = Math.floor((e.clientY-rect.top)/rect.height*h);
  const from = last || [x, y];
  ws.send(JSON.stringify({type:"paint",x1:from[0],y1:from[1],x2:x,y2:y,radius:2,material:material,tint:0,spread:spreads[material]||0}));
  last = [x, y];
});
canvas.addEventListener("mouseup", () => { last = null; });
</script>
</body>
</html>
`
