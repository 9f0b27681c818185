package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/pkg/helpers"
)

func TestNullableString(t *testing.T) {
	rq := require.New(t)

	rq.Nil(helpers.NullableString(""))

	got := helpers.NullableString("Uppsala")
	rq.NotNil(got)
	rq.Equal("Uppsala", *got)
}

func TestStringValue(t *testing.T) {
	rq := require.New(t)

	rq.Equal("", helpers.StringValue(nil))

	city := "Lund"
	rq.Equal("Lund", helpers.StringValue(&city))
}
