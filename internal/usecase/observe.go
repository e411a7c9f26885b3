package usecase

import (
	"errors"
	"time"

	"skill-exchange/internal/metrics"
)

func observe(query string, started time.Time, candidates, results int, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrUserNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrInvalidInput):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	if err != nil {
		results = -1
	}
	metrics.ObserveQuery(query, outcome, started, candidates, results)
}
