package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/usbtypec1/car-wash-project-api-server/internal/models"
)

// int64ListQuery reads ids given either as repeated keys or comma separated.
// A missing key yields nil, an empty value yields an empty list.
func int64ListQuery(c *gin.Context, key string) ([]int64, error) {
	values, ok := c.GetQueryArray(key)
	if !ok {
		return nil, nil
	}

	ids := []int64{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %q", key, part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", c.Param("id"))
	}
	return id, nil
}

// periodQuery reads from_date and to_date. Missing bounds default to the
// current month in the reports timezone.
func (s *Server) periodQuery(c *gin.Context) (models.Date, models.Date, error) {
	loc := s.config.ReportsTZ
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	from := models.NewDate(now.Year(), now.Month(), 1)
	to := models.NewDate(now.Year(), now.Month()+1, 0)

	if raw := c.Query("from_date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return models.Date{}, models.Date{}, err
		}
		from = parsed
	}
	if raw := c.Query("to_date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return models.Date{}, models.Date{}, err
		}
		to = parsed
	}
	return from, to, nil
}
