package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	systemdomain "github.com/slzdigital/catalogo/internal/system/domain"
)

// ListSystems answers both GET /systems and GET /admin/systems. All filters
// are optional and combine with AND semantics.
func (s *Server) ListSystems(c *gin.Context) {
	req := systemdomain.ListRequest{
		Category:  strings.TrimSpace(c.Query("category")),
		Secretary: strings.TrimSpace(c.Query("secretary")),
		Search:    strings.TrimSpace(c.Query("search")),
	}

	onlyNew, err := parseOptionalBool(c.Query("new"))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if onlyNew != nil {
		req.OnlyNew = *onlyNew
	}

	if req.Highlight, err = parseOptionalBool(c.Query("highlight")); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	systems, err := s.systemSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, systems)
}

func (s *Server) ListSystemsByCategory(c *gin.Context) {
	systems, err := s.systemSvc.List(c.Request.Context(), systemdomain.ListRequest{
		Category: strings.TrimSpace(c.Param("category")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, systems)
}

// ListSystemsByDepartment filters by exact secretary code. Department-bucket
// grouping exists only on the dashboard; this route is a plain column match.
func (s *Server) ListSystemsByDepartment(c *gin.Context) {
	systems, err := s.systemSvc.List(c.Request.Context(), systemdomain.ListRequest{
		Secretary: strings.TrimSpace(c.Param("department")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, systems)
}

type searchRequest struct {
	Query *string `json:"query"`
}

func (s *Server) SearchSystems(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == nil {
		AbortWithError(c, systemdomain.ErrInvalidQuery)
		return
	}

	systems, err := s.systemSvc.Search(c.Request.Context(), *req.Query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, systems)
}

func (s *Server) GetSystemByID(c *gin.Context) {
	system, err := s.systemSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, system)
}

func (s *Server) CreateSystem(c *gin.Context) {
	var req systemdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	system, err := s.systemSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, http.StatusCreated, system)
}

func (s *Server) UpdateSystem(c *gin.Context) {
	var req systemdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = c.Param("id")

	system, err := s.systemSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, system)
}

func (s *Server) DeleteSystem(c *gin.Context) {
	if err := s.systemSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

// parseOptionalBool distinguishes an absent flag from an explicit false.
func parseOptionalBool(raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
