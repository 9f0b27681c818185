package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/pkg/helpers"
)

func TestParseDuration(t *testing.T) {
	rq := require.New(t)

	rq.Equal(90*time.Minute, helpers.ParseDuration("1h30m", time.Hour))
	rq.Equal(time.Hour, helpers.ParseDuration("soon", time.Hour))
	rq.Equal(30*time.Second, helpers.ParseDuration("", 30*time.Second))
}
