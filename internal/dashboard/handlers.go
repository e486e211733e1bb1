package dashboard

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/interaction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return c.JSON(s.status)
}

func (s *Server) handleForceScan(c *fiber.Ctx) error {
	if !s.Enqueue(Command{Kind: CommandScan}) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "command queue full",
		})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"queued": "scan"})
}

// handleScans returns recent reports; ?limit=N caps the count.
func (s *Server) handleScans(c *fiber.Ctx) error {
	return c.JSON(s.Scans(c.QueryInt("limit", scanHistory)))
}

func (s *Server) handleLatestScan(c *fiber.Ctx) error {
	latest := s.Scans(1)
	if len(latest) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no scans yet",
		})
	}
	return c.JSON(latest[0])
}

func (s *Server) handleGetConfig(c *fiber.Ctx) error {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()
	return c.JSON(fiber.Map{
		"config": cfg,
		"props":  cfg.Props(),
	})
}

// SetPropRequest is the request body for PUT /api/config/:prop
type SetPropRequest struct {
	Value any `json:"value"`
}

// handleSetProp validates the edit against the current config and queues it.
func (s *Server) handleSetProp(c *fiber.Ctx) error {
	prop := c.Params("prop")

	var req SetPropRequest
	if err := c.BodyParser(&req); err != nil || req.Value == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must be {\"value\": ...}",
		})
	}

	if prop != "enabled" {
		s.mu.RLock()
		next := s.config
		s.mu.RUnlock()
		if !knownProp(prop) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown property " + prop,
			})
		}
		if !next.ApplyProp(prop, req.Value) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid value for " + prop,
			})
		}
		if err := next.Validate(); err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	} else if _, ok := req.Value.(bool); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "enabled must be a boolean",
		})
	}

	if !s.Enqueue(Command{Kind: CommandSet, Prop: prop, Value: req.Value}) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "command queue full",
		})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"queued": prop,
		"value":  req.Value,
	})
}

func knownProp(name string) bool {
	for _, p := range interaction.ConfigPropNames() {
		if p == name {
			return true
		}
	}
	return false
}

func (s *Server) handleScansWS(c *websocket.Conn) {
	NewClient(s.hub, c).Run()
}
