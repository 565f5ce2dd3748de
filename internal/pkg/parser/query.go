package parser

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// DecodeQuery decodes the request query string into the target struct
// using `schema` struct tags.
func DecodeQuery(c *fiber.Ctx, target interface{}) error {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, val []byte) {
		values.Add(string(key), string(val))
	})
	return queryDecoder.Decode(target, values)
}
