package controller

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/hcridlig/moovie-app-sub000/internal/domain"
)

func mediaTypeFromQuery(q url.Values) (domain.MediaType, error) {
	if !q.Has("media_type") {
		return domain.MediaTypeMovie, nil
	}

	return domain.ParseMediaType(q.Get("media_type"))
}

func limitFromQuery(q url.Values, key string, fallback, limit int) (int, error) {
	if !q.Has(key) {
		return fallback, nil
	}

	value, err := strconv.ParseInt(q.Get(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s from query: %w", key, err)
	}
	if value < 1 {
		return 0, fmt.Errorf("invalid %s value [%d]", key, value)
	}
	if int(value) > limit {
		return 0, fmt.Errorf("%s [%d] exceeds limit [%d]", key, value, limit)
	}

	return int(value), nil
}
