package transport

import (
	"net/http"
	"strconv"

	"github.com/yhlin/social-network/kit/code"
)

// DecodePaginationQuery validates optional limit/offset query params at the
// boundary. Zero values mean the param was absent.
func DecodePaginationQuery(r *http.Request) (limit, offset int, err error) {
	if limitString := r.URL.Query().Get("limit"); limitString != "" {
		limit, err = strconv.Atoi(limitString)
		if err != nil || limit <= 0 {
			return 0, 0, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
		}
	}
	if offsetString := r.URL.Query().Get("offset"); offsetString != "" {
		offset, err = strconv.Atoi(offsetString)
		if err != nil || offset < 0 {
			return 0, 0, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
		}
	}
	return limit, offset, nil
}
