package helpers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/repository"
)

const DateLayout = "2006-01-02"

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseUUIDParam reads a path parameter. A malformed id can never match a row, so it
// is reported as not found.
func ParseUUIDParam(c *gin.Context, name, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.NotFound("%s not found.", entity)
	}
	return id, nil
}

// ParseUUIDQuery returns nil when the query parameter is absent.
func ParseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.Validation(name, "Must be a valid UUID.")
	}
	return &id, nil
}

// ParseUUIDList parses a comma separated list such as "crew=<id>,<id>".
func ParseUUIDList(c *gin.Context, name string) ([]uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, apperror.Validation(name, "Must be a comma separated list of UUIDs.")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func ParseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, apperror.Validation(name, "Date has wrong format. Use YYYY-MM-DD.")
	}
	return &date, nil
}

func ParsePage(c *gin.Context) (repository.Page, error) {
	page, err := StringToInt(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return repository.Page{}, apperror.Validation("page", "Invalid page number.")
	}
	limit, err := StringToInt(c.DefaultQuery("limit", strconv.Itoa(repository.DefaultPageLimit)))
	if err != nil || limit < 1 {
		return repository.Page{}, apperror.Validation("limit", "Invalid limit.")
	}
	if limit > repository.MaxPageLimit {
		limit = repository.MaxPageLimit
	}
	return repository.Page{Page: page, Limit: limit}, nil
}

// PageResponse mirrors the list envelope: results plus paging counters.
func PageResponse[R, T any](results []R, page repository.PageResult[T]) gin.H {
	return gin.H{
		"results":     results,
		"total":       page.Total,
		"page":        page.Page,
		"limit":       page.Limit,
		"total_pages": page.TotalPages(),
	}
}
