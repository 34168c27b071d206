package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type ensurerFunc func(ctx context.Context, userID int64) (*domain.Account, error)

func (f ensurerFunc) EnsureAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	return f(ctx, userID)
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	secret []byte
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.secret = []byte("secret")
}

func (s *AuthMiddlewareTestSuite) serve(r *gin.Engine, userID int64, role tokens.Role) *httptest.ResponseRecorder {
	token, err := tokens.GenerateUserJWT(userID, role, time.Hour, s.secret)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestEnsureAccount() {
	var ensured []int64
	ok := ensurerFunc(func(_ context.Context, userID int64) (*domain.Account, error) {
		ensured = append(ensured, userID)
		return &domain.Account{UserID: userID}, nil
	})
	failing := ensurerFunc(func(context.Context, int64) (*domain.Account, error) {
		return nil, errors.New("db is down")
	})

	newRouter := func(svs AccountEnsurer) *gin.Engine {
		r := gin.New()
		r.Use(Errors(), AuthRequired(s.secret), EnsureAccount(svs))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	w := s.serve(newRouter(ok), 42, tokens.RoleUser)
	s.Equal(http.StatusOK, w.Code)
	s.Equal([]int64{42}, ensured)

	w = s.serve(newRouter(failing), 42, tokens.RoleUser)
	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"error":"internal server error"}`, w.Body.String())
}

func (s *AuthMiddlewareTestSuite) TestRoleRequired() {
	r := gin.New()
	r.Use(Errors(), AuthRequired(s.secret), RoleRequired(tokens.RoleAdmin))
	r.GET("/", func(c *gin.Context) {
		role, _ := c.Get(CurrentUserRoleKey)
		c.String(http.StatusOK, string(role.(tokens.Role)))
	})

	w := s.serve(r, 1, tokens.RoleAdmin)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("admin", w.Body.String())

	w = s.serve(r, 1, tokens.RoleUser)
	s.Equal(http.StatusForbidden, w.Code)
}
