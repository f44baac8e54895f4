package cli

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/roto-draft/internal/usecase"
)

var seasonPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

type playerIDRequest struct {
	PlayerID string `validate:"required,max=64"`
}

type searchRequest struct {
	Query string `validate:"max=100"`
}

type limitRequest struct {
	Limit int `validate:"gte=0"`
}

type leaderboardRequest struct {
	Season   string `validate:"omitempty,season"`
	Position string `validate:"omitempty,max=4"`
	MinGames int    `validate:"gte=0"`
	RankType string `validate:"oneof=per_game total"`
	Limit    int    `validate:"gte=0"`
}

type historicalRequest struct {
	Position   string `validate:"omitempty,max=4"`
	Category   string `validate:"omitempty,oneof=elite-consistent rising-stars breakout-candidates reliable-producers declining volatile"`
	PlayerID   string `validate:"omitempty,max=64"`
	MinSeasons int    `validate:"gte=1"`
	MinGames   int    `validate:"gte=0"`
	RankType   string `validate:"oneof=per_game total"`
}

type compareRequest struct {
	PlayerIDs []string `validate:"required,min=1,dive,required"`
	Mode      string   `validate:"oneof=averages totals zscores"`
}

type teamRequest struct {
	PlayerIDs []string `validate:"required,min=1,dive,required"`
}

type draftBoardRequest struct {
	Drafted     []string `validate:"dive,required"`
	Position    string   `validate:"omitempty,max=4"`
	HideDrafted bool
	SortBy      string `validate:"oneof=name adp tier projRank projValue valueDelta avgRank recent1 recent2 recent3 consistency trend"`
	Desc        bool
}

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("season", validateSeason); err != nil {
		panic(err)
	}
	return v
}

// validateSeason accepts "YYYY-YYYY" where the second year follows the first.
func validateSeason(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !seasonPattern.MatchString(value) {
		return false
	}
	start, _ := strconv.Atoi(value[:4])
	end, _ := strconv.Atoi(value[5:])
	return end == start+1
}

func (c *CLI) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "cli.validateRequest")
	defer span.End()

	if err := c.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
