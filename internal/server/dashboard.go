package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	dashboarddomain "github.com/slzdigital/catalogo/internal/dashboard/domain"
)

func (s *Server) GetDashboardStats(c *gin.Context) {
	stats, err := s.dashboardSvc.GetStats(c.Request.Context(), dashboarddomain.StatsRequest{
		Department: strings.TrimSpace(c.Query("department")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, http.StatusOK, stats)
}
