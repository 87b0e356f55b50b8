package server

import (
	"github.com/gin-gonic/gin"
	referencedomain "github.com/slzdigital/catalogo/internal/reference/domain"
)

func (s *Server) ListCategories(c *gin.Context) {
	categories, err := s.refrepo.ListCategories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, categories)
}

// ListDepartments serves the fixed bucket list; it never touches storage.
func (s *Server) ListDepartments(c *gin.Context) {
	respondList(c, referencedomain.Buckets())
}

func (s *Server) ListSecretaries(c *gin.Context) {
	secretaries, err := s.refrepo.ListSecretaries(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, secretaries)
}
