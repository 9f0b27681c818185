package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/pkg/helpers"
)

func TestCalculateOffsetLimit(t *testing.T) {
	testCases := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 25, wantOffset: 50, wantLimit: 25},
		{name: "page below one clamps", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "size zero falls back to default", page: 2, size: 0, wantOffset: 10, wantLimit: helpers.DefaultPageSize},
		{name: "size above max falls back to default", page: 1, size: helpers.MaxPageSize + 1, wantOffset: 0, wantLimit: helpers.DefaultPageSize},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			offset, limit := helpers.CalculateOffsetLimit(tc.page, tc.size)
			rq.Equal(tc.wantOffset, offset)
			rq.Equal(tc.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	rq := require.New(t)

	info := helpers.NewPaginationInfo(45, 2, 10)
	rq.Equal(2, info.CurrentPage)
	rq.Equal(5, info.TotalPages)
	rq.Equal(10, info.PageSize)
	rq.Equal(int64(45), info.TotalItems)

	// current page never exceeds the last page
	info = helpers.NewPaginationInfo(45, 9, 10)
	rq.Equal(5, info.CurrentPage)

	// empty result on the first page still reports one page
	info = helpers.NewPaginationInfo(0, 1, 10)
	rq.Equal(1, info.TotalPages)
	rq.Equal(int64(0), info.TotalItems)
}
