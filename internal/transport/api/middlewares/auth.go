package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey   = "currentUserID"
	CurrentUserRoleKey = "currentUserRole"

	ensureAccountTimeout = 3 * time.Second
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан,
// вернется ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if !strings.HasPrefix(tokenHeader, bearer) {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateUserJWT(tokenHeader[len(bearer):], jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст id (CurrentUserIDKey) и роль
// (CurrentUserRoleKey).
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
			return
		}
		c.Set(CurrentUserIDKey, claims.ID)
		c.Set(CurrentUserRoleKey, claims.Role)
		c.Next()
	}
}

// RoleRequired пропускает только запросы с одной из ролей roles.
func RoleRequired(roles ...tokens.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CurrentUserRoleKey)
		r, ok := role.(tokens.Role)
		if !ok || !slices.Contains(roles, r) {
			_ = c.AbortWithError(http.StatusForbidden, fmt.Errorf("role %v is not allowed", role)).
				SetType(gin.ErrorTypePrivate)
			return
		}
		c.Next()
	}
}

type AccountEnsurer interface {
	EnsureAccount(ctx context.Context, userID int64) (*domain.Account, error)
}

// EnsureAccount создает счет текущего пользователя при первом обращении. Дальше обработчики работают с
// уже существующим счетом и ничего не создают при чтении.
func EnsureAccount(svs AccountEnsurer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get(CurrentUserIDKey)
		id, ok := userID.(int64)
		if !ok {
			_ = c.AbortWithError(http.StatusInternalServerError, errors.New("no current user in context")).
				SetType(gin.ErrorTypePrivate)
			return
		}

		ctx, cancel := context.WithTimeout(c, ensureAccountTimeout)
		defer cancel()

		if _, err := svs.EnsureAccount(ctx, id); err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			return
		}
		c.Next()
	}
}
