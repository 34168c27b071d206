package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestReleaseUsesJSON() {
	s.T().Setenv("GIN_MODE", "release")
	var buf bytes.Buffer
	l := New(&buf)

	Component(l, "shop-rotation").Info("rotated")

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &entry))
	s.Equal("shop-rotation", entry["component"])
	s.Equal("rotated", entry["msg"])
}

func (s *LoggerTestSuite) TestDebugOutsideRelease() {
	s.T().Setenv("GIN_MODE", "debug")
	var buf bytes.Buffer
	l := New(&buf)

	l.Debug("visible")
	s.Contains(buf.String(), "visible")
}
