package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type ConvertErrTestSuite struct {
	suite.Suite
}

func TestConvertErrSuite(t *testing.T) {
	suite.Run(t, new(ConvertErrTestSuite))
}

func (s *ConvertErrTestSuite) TestConvertErr() {
	cases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantErr: domain.ErrRecordNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: uniqueViolationCode}, wantErr: domain.ErrDuplicateKey},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantErr: domain.ErrUnknown},
		{name: "plain error", err: errors.New("connection reset"), wantErr: domain.ErrUnknown},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			err := convertErr(t.err, "finding account %d", 1)
			s.ErrorIs(err, t.wantErr)
			s.Contains(err.Error(), "[repository/finding account 1]")
		})
	}
	s.NoError(convertErr(nil, "nothing"))
}

func (s *ConvertErrTestSuite) TestDuplicateErr() {
	err := duplicateErr("creating payment %s", "p-1")
	s.ErrorIs(err, domain.ErrDuplicateKey)
	s.Contains(err.Error(), "p-1")
}

func (s *ConvertErrTestSuite) TestParseDay() {
	date, err := parseDay("2026-10-18")
	s.Require().NoError(err)
	s.Equal(18, date.Day())

	_, badErr := parseDay("18.10.2026")
	s.ErrorIs(badErr, domain.ErrUnknown)
}
