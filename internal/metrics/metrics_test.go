package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type MetricsTestSuite struct {
	suite.Suite
	m *Metrics
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (s *MetricsTestSuite) SetupTest() {
	s.m = New()
}

func (s *MetricsTestSuite) TestMiddlewareUsesRouteTemplate() {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(s.m.Middleware())
	r.GET("/api/market/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/market/"+id, nil))
		s.Equal(http.StatusNoContent, rec.Code)
	}

	s.InDelta(2, testutil.ToFloat64(s.m.httpRequests.WithLabelValues(http.MethodGet, "/api/market/:id", "204")), 0)
	s.InDelta(0, testutil.ToFloat64(s.m.httpInFlight), 0)
}

func (s *MetricsTestSuite) TestOperationsAndRotations() {
	s.m.Operation("transfer", OutcomeOK)
	s.m.Operation("transfer", "insufficient_funds")
	s.m.Rotation(nil)
	s.m.Rotation(errors.New("boom"))

	s.InDelta(1, testutil.ToFloat64(s.m.operations.WithLabelValues("transfer", "insufficient_funds")), 0)
	s.InDelta(1, testutil.ToFloat64(s.m.rotations.WithLabelValues(OutcomeError)), 0)
}

func (s *MetricsTestSuite) TestHandlerExposesRegistry() {
	s.m.Operation("claim_daily", OutcomeOK)

	rec := httptest.NewRecorder()
	s.m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.True(strings.Contains(rec.Body.String(), "wishes_economy_operations_total"))
}
