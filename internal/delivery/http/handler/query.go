package handler

import (
	"errors"
	"strconv"
	"strings"

	"skill-exchange/internal/delivery/http/middleware"
	"skill-exchange/internal/domain/skill"
	"skill-exchange/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type matchQuery struct {
	Category  string   `validate:"omitempty,max=64"`
	MinRating *float64 `validate:"omitempty,gte=0,lte=5"`
	Location  string   `validate:"omitempty,max=128"`
}

type similarQuery struct {
	Limit int `validate:"gte=1,lte=50"`
}

func parseMatchQuery(c fiber.Ctx) (usecase.MatchFilters, error) {
	q := matchQuery{
		Category: strings.TrimSpace(c.Query("category")),
		Location: strings.TrimSpace(c.Query("location")),
	}
	if raw := strings.TrimSpace(c.Query("min_rating")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return usecase.MatchFilters{}, badQuery("min_rating must be a number", err)
		}
		q.MinRating = &v
	}
	if err := validate.Struct(q); err != nil {
		return usecase.MatchFilters{}, badQuery(validationMessage(err), err)
	}

	filters := usecase.MatchFilters{MinRating: q.MinRating, Location: q.Location}
	if q.Category != "" {
		cat, err := skill.ParseCategory(q.Category)
		if err != nil {
			return usecase.MatchFilters{}, badQuery("unknown category", err)
		}
		filters.Category = &cat
	}
	return filters, nil
}

func parseSimilarQuery(c fiber.Ctx) (int, error) {
	q := similarQuery{Limit: usecase.DefaultSimilarLimit}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, badQuery("limit must be an integer", err)
		}
		q.Limit = v
	}
	if err := validate.Struct(q); err != nil {
		return 0, badQuery(validationMessage(err), err)
	}
	return q.Limit, nil
}

func badQuery(msg string, cause error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, cause)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "invalid " + toSnake(verrs[0].Field())
	}
	return "Bad request"
}

func toSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
