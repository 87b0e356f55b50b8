package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	reviewdomain "github.com/slzdigital/catalogo/internal/review/domain"
)

func (s *Server) SubmitReview(c *gin.Context) {
	var req reviewdomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.SystemID = c.Param("id")

	review, err := s.reviewSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, review)
}
