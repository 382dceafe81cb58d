// Package api serves sequence expansion over HTTP.
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/intseq/internal/expand"
	"github.com/samcharles93/intseq/internal/format"
	"github.com/samcharles93/intseq/internal/logger"
)

type Server struct {
	expander *expand.Expander
	store    *ExpansionStore
	log      logger.Logger
	clock    func() time.Time
}

func NewServer(expander *expand.Expander, store *ExpansionStore, log logger.Logger) *Server {
	if store == nil {
		store = NewExpansionStore(0)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		expander: expander,
		store:    store,
		log:      log,
		clock:    time.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.handleHealth)

	e.POST("/v1/expansions", s.handleCreateExpansion)
	e.GET("/v1/expansions/:id", s.handleGetExpansion)
	e.DELETE("/v1/expansions/:id", s.handleDeleteExpansion)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateExpansion(c *echo.Context) error {
	if s.expander == nil {
		return writeError(c, http.StatusInternalServerError, "server_error", "expander not configured", "", "")
	}
	req, err := decodeJSON[ExpandRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "invalid JSON body: "+err.Error(), "")
	}
	if strings.TrimSpace(req.Input) == "" {
		return writeBadRequest(c, "input is required", "input")
	}
	style, err := format.ParseStyle(req.Format)
	if err != nil {
		return writeBadRequest(c, err.Error(), "format")
	}

	res, err := s.expander.Expand(c.Request().Context(), req.Input)
	if err != nil {
		e := classify(err)
		s.log.Warn("expansion failed", "input", req.Input, "code", e.code, "error", err)
		return writeError(c, e.status, e.typ, err.Error(), e.code, "input")
	}

	exp := Expansion{
		ID:        newExpansionID(),
		Object:    "expansion",
		CreatedAt: s.clock().Unix(),
		Input:     res.Input,
		Prefix:    res.Request.Prefix,
		End:       res.Request.End,
		Inclusive: res.Request.Inclusive,
		Model:     res.Model,
		Source:    res.Source,
		Terms:     res.Terms,
		Format:    style.String(),
		Literal:   res.Literal(style),
	}
	if req.Store == nil || *req.Store {
		s.store.Save(exp)
	}
	s.log.Info("expansion created", "id", exp.ID, "model", exp.Model, "terms", len(exp.Terms))
	return c.JSON(http.StatusOK, exp)
}

func (s *Server) handleGetExpansion(c *echo.Context) error {
	exp, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "expansion not found")
	}
	return c.JSON(http.StatusOK, exp)
}

func (s *Server) handleDeleteExpansion(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeNotFound(c, "expansion not found")
	}
	return c.JSON(http.StatusOK, DeletedExpansion{ID: id, Object: "expansion.deleted", Deleted: true})
}
