package dashboard

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/interaction"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

const (
	// scanHistory is how many reports /api/scans can return
	scanHistory = 100

	commandBuffer = 64
)

// SelectorStatus is the latest known state of the watched selector.
type SelectorStatus struct {
	ID        string  `json:"id"`
	Owner     string  `json:"owner"`
	State     string  `json:"state"`
	Enabled   bool    `json:"enabled"`
	Best      string  `json:"best,omitempty"`
	BestUID   uint64  `json:"bestUid,omitempty"`
	BestScore float32 `json:"bestScore"`
	Scans     uint64  `json:"scans"`
	Updated   string  `json:"updated"`
}

// CommandKind selects what a queued Command does.
type CommandKind string

const (
	CommandSet  CommandKind = "set"
	CommandScan CommandKind = "scan"
)

// Command is a dashboard request to be applied on the game loop.
type Command struct {
	Kind  CommandKind `json:"kind"`
	Prop  string      `json:"prop,omitempty"`
	Value any         `json:"value,omitempty"`
}

// Server is the selector telemetry dashboard. Publish methods are called from
// the game loop; handlers run on fiber's goroutines.
type Server struct {
	app  *fiber.App
	addr string
	hub  *Hub

	mu     sync.RWMutex
	status SelectorStatus
	config interaction.Config
	scans  []*interaction.ScanReport

	commands chan Command
	hubOnce  sync.Once
	cancel   context.CancelFunc
}

func NewServer(addr string) *Server {
	s := &Server{
		addr:     addr,
		hub:      NewHub("scans"),
		config:   interaction.DefaultConfig(),
		scans:    make([]*interaction.ScanReport, 0, scanHistory),
		commands: make(chan Command, commandBuffer),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Icon Selector Dashboard",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	// CORS for local development
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"clients": s.hub.ClientCount(),
		})
	})

	api := app.Group("/api")
	api.Get("/selector", s.handleStatus)
	api.Post("/selector/scan", s.handleForceScan)
	api.Get("/scans", s.handleScans)
	api.Get("/scans/latest", s.handleLatestScan)
	api.Get("/config", s.handleGetConfig)
	api.Put("/config/:prop", s.handleSetProp)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/scans", websocket.New(s.handleScansWS))

	s.app = app
	return s
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Hub() *Hub {
	return s.hub
}

// startHub runs the hub once. cancel is stored before the hub goroutine
// exists, so Shutdown always sees it.
func (s *Server) startHub() {
	s.hubOnce.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		s.mu.Lock()
		s.cancel = cancel
		s.mu.Unlock()
		go s.hub.Run(ctx)
	})
}

// Start runs the hub and blocks serving HTTP.
func (s *Server) Start() error {
	s.startHub()
	log.Info("dashboard listening", "addr", s.addr)
	return s.app.Listen(s.addr)
}

// Serve runs the hub and blocks serving HTTP on ln.
func (s *Server) Serve(ln net.Listener) error {
	s.startHub()
	log.Info("dashboard listening", "addr", ln.Addr().String())
	return s.app.Listener(ln)
}

// StartAsync starts the hub, then serves HTTP in a goroutine.
func (s *Server) StartAsync() {
	s.startHub()
	go func() {
		if err := s.Start(); err != nil {
			log.Error("dashboard stopped", "err", err)
		}
	}()
}

// Shutdown gracefully stops the web server and the hub.
func (s *Server) Shutdown() error {
	s.mu.RLock()
	cancel := s.cancel
	s.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
	return s.app.Shutdown()
}

// Watch publishes every scan of sel. Call it on the game loop.
func (s *Server) Watch(sel *interaction.IconSelector) {
	s.SetConfig(sel.Config)
	s.UpdateStatus(statusOf(sel))
	sel.OnScan.AddListener(func(r *interaction.ScanReport) {
		s.PublishScan(r)
		s.UpdateStatus(statusOf(sel))
	})
	sel.OnSelectionChanged.AddListener(func(change interaction.SelectionChange) {
		s.hub.BroadcastJSON(Envelope{Type: "selection", Data: selectionOf(change)})
	})
}

// ApplyPending runs queued commands against sel and returns how many were
// accepted. Call it on the game loop.
func (s *Server) ApplyPending(sel *interaction.IconSelector) int {
	applied := 0
	for {
		select {
		case cmd := <-s.commands:
			if s.apply(sel, cmd) {
				applied++
			}
		default:
			if applied > 0 {
				s.SetConfig(sel.Config)
				s.UpdateStatus(statusOf(sel))
			}
			return applied
		}
	}
}

func (s *Server) apply(sel *interaction.IconSelector, cmd Command) bool {
	switch cmd.Kind {
	case CommandScan:
		sel.ForceScan()
		return true
	case CommandSet:
		if engine.ApplyScriptProperty(sel, cmd.Prop, cmd.Value) {
			log.Info("selector property set", "prop", cmd.Prop, "value", cmd.Value)
			return true
		}
		log.Warn("selector property rejected", "prop", cmd.Prop, "value", cmd.Value)
	}
	return false
}

// Enqueue queues cmd for the game loop. Returns false when the queue is full.
func (s *Server) Enqueue(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		return false
	}
}

func (s *Server) PublishScan(r *interaction.ScanReport) {
	if r == nil {
		return
	}
	s.mu.Lock()
	s.scans = append(s.scans, r)
	if len(s.scans) > scanHistory {
		s.scans = s.scans[1:]
	}
	s.mu.Unlock()

	s.hub.BroadcastJSON(Envelope{Type: "scan", Data: r})
}

func (s *Server) UpdateStatus(st SelectorStatus) {
	st.Updated = time.Now().Format("15:04:05.000")
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
	s.hub.BroadcastJSON(Envelope{Type: "status", Data: st})
}

func (s *Server) SetConfig(cfg interaction.Config) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

// Scans returns up to limit of the most recent reports, oldest first.
func (s *Server) Scans(limit int) []*interaction.ScanReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.scans) {
		limit = len(s.scans)
	}
	out := make([]*interaction.ScanReport, limit)
	copy(out, s.scans[len(s.scans)-limit:])
	return out
}

func statusOf(sel *interaction.IconSelector) SelectorStatus {
	st := SelectorStatus{
		ID:        sel.ID().String(),
		State:     sel.State().String(),
		Enabled:   sel.Enabled(),
		BestScore: sel.CurrentBestScore(),
	}
	if g := sel.GetGameObject(); g != nil {
		st.Owner = g.Name
	}
	if best := sel.CurrentBest(); best != nil {
		st.Best = best.Name
		st.BestUID = best.UID
	}
	if r := sel.LastReport(); r != nil {
		st.Scans = r.Seq
	}
	return st
}

type selectionEvent struct {
	Previous string  `json:"previous,omitempty"`
	Current  string  `json:"current,omitempty"`
	Score    float32 `json:"score"`
}

func selectionOf(change interaction.SelectionChange) selectionEvent {
	ev := selectionEvent{Score: change.Score}
	if change.Previous != nil {
		ev.Previous = change.Previous.Name
	}
	if change.Current != nil {
		ev.Current = change.Current.Name
	}
	return ev
}
