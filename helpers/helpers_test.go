package helpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ludoadmin/services"
)

func TestBirr(t *testing.T) {
	assert.Equal(t, "1,234.50 ብር", Birr(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "0.00 ብር", Birr(decimal.Zero))
	assert.Equal(t, "1,000,000.00 ብር", Birr(decimal.NewFromInt(1000000)))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "12,345", Count(12345))
}

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", services.Validationf("status", "bad"), fiber.StatusBadRequest},
		{"no credential", fmt.Errorf("save: %w", services.ErrNoCredential), fiber.StatusUnauthorized},
		{"upstream 404", &services.HTTPError{Status: 404}, fiber.StatusNotFound},
		{"upstream 500", &services.HTTPError{Status: 500}, fiber.StatusBadGateway},
		{"network", &services.NetworkError{Method: "GET", Path: "/x", Err: errors.New("refused")}, fiber.StatusBadGateway},
		{"fiber", fiber.NewError(fiber.StatusConflict, "busy"), fiber.StatusConflict},
		{"other", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrorStatus(tc.err))
		})
	}
}
