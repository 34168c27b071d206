package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TokensTestSuite struct {
	suite.Suite
	key []byte
}

func TestTokensSuite(t *testing.T) {
	suite.Run(t, new(TokensTestSuite))
}

func (s *TokensTestSuite) SetupTest() {
	s.key = []byte("super secret key")
}

func (s *TokensTestSuite) TestRoundTrip() {
	token, err := GenerateUserJWT(42, RoleAdmin, time.Hour, s.key)
	s.Require().NoError(err)

	claims, err := ValidateUserJWT(token, s.key)
	s.Require().NoError(err)
	s.Equal(int64(42), claims.ID)
	s.Equal(RoleAdmin, claims.Role)
}

func (s *TokensTestSuite) TestExpired() {
	token, err := GenerateUserJWT(1, RoleUser, -time.Minute, s.key)
	s.Require().NoError(err)

	_, err = ValidateUserJWT(token, s.key)
	s.ErrorIs(err, ErrTokenExpired)
}

func (s *TokensTestSuite) TestWrongKey() {
	token, err := GenerateUserJWT(1, RoleUser, time.Hour, s.key)
	s.Require().NoError(err)

	_, err = ValidateUserJWT(token, []byte("another key"))
	s.Error(err)
}

func (s *TokensTestSuite) TestUnknownRole() {
	_, err := GenerateUserJWT(1, Role("root"), time.Hour, s.key)
	s.ErrorIs(err, ErrInvalidRole)
}
