package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidRole  = errors.New("invalid role")
)

type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RolePayments Role = "payments"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RolePayments:
		return true
	default:
		return false
	}
}

// UserClaims ID - id пользователя чата, Role - права вызывающей стороны.
type UserClaims struct {
	jwt.RegisteredClaims
	ID   int64
	Role Role
}

func GenerateUserJWT(id int64, role Role, expire time.Duration, key []byte) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("generating user jwt token: %w: %q", ErrInvalidRole, role)
	}
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ID:   id,
		Role: role,
	}
	token, err := generateJWT(userClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	token, err := validateJWT(tokenString, new(UserClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("validating user jwt token: %w: %q", ErrInvalidRole, claims.Role)
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
