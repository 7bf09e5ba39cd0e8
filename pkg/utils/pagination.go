package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// SliceParams represents offset/limit slicing parameters.
type SliceParams struct {
	Skip  int
	Limit int
}

// GetSliceParams extracts skip/limit parameters from the request.
func GetSliceParams(c echo.Context) SliceParams {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if skip < 0 {
		skip = 0
	}

	if limit <= 0 || limit > 1000 {
		limit = 100 // Default slice size
	}

	return SliceParams{
		Skip:  skip,
		Limit: limit,
	}
}

// Slice applies [skip, skip+limit) to a slice length and returns the bounds.
func (p SliceParams) Slice(n int) (int, int) {
	start := p.Skip
	if start > n {
		start = n
	}
	end := start + p.Limit
	if end > n {
		end = n
	}
	return start, end
}
