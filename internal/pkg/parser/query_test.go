package parser

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type pageQuery struct {
	Page  *int `schema:"page"`
	Limit *int `schema:"limit"`
}

func decodeVia(t *testing.T, target string) (pageQuery, error) {
	t.Helper()

	var query pageQuery
	var decodeErr error

	app := fiber.New()
	app.Get("/q", func(c *fiber.Ctx) error {
		decodeErr = DecodeQuery(c, &query)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	return query, decodeErr
}

func TestDecodeQuery(t *testing.T) {
	t.Run("decodes present parameters", func(t *testing.T) {
		query, err := decodeVia(t, "/q?page=2&limit=5")

		assert.NoError(t, err)
		if assert.NotNil(t, query.Page) {
			assert.Equal(t, 2, *query.Page)
		}
		if assert.NotNil(t, query.Limit) {
			assert.Equal(t, 5, *query.Limit)
		}
	})

	t.Run("absent parameters stay nil", func(t *testing.T) {
		query, err := decodeVia(t, "/q")

		assert.NoError(t, err)
		assert.Nil(t, query.Page)
		assert.Nil(t, query.Limit)
	})

	t.Run("explicit zero is distinguishable from absent", func(t *testing.T) {
		query, err := decodeVia(t, "/q?limit=0")

		assert.NoError(t, err)
		assert.Nil(t, query.Page)
		if assert.NotNil(t, query.Limit) {
			assert.Equal(t, 0, *query.Limit)
		}
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		query, err := decodeVia(t, "/q?page=1&sort=asc")

		assert.NoError(t, err)
		if assert.NotNil(t, query.Page) {
			assert.Equal(t, 1, *query.Page)
		}
	})
}
