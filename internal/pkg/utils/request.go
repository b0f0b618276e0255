package utils

import (
	"net/http"
	"strconv"

	"dentflow-service/internal/pkg/constvars"
	"dentflow-service/internal/pkg/dto/requests"
	"dentflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

func DecodeJSONBody(r *http.Request, out interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// IsDeleteConfirmed reads the confirm=true flag that every destructive
// dashboard action must carry.
func IsDeleteConfirmed(r *http.Request) bool {
	confirmed, err := strconv.ParseBool(r.URL.Query().Get(constvars.URLQueryParamConfirm))
	return err == nil && confirmed
}
