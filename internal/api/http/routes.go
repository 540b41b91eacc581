package httpapi

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/adipramono/ramalan-cuaca/internal/forecast"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
//
// The message endpoint mirrors the one-shot contract: it always answers 200
// with a message body, whether that is a full forecast or the fixed
// fetch-failure warning.
func RegisterRoutes(app *fiber.App, retriever *forecast.Retriever, formatter *forecast.Formatter) {
	v1 := app.Group("/api/v1")

	v1.Get("/pesan", func(c *fiber.Ctx) error {
		req, err := parseMessageQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		f := formatter
		if req.Policy != "" {
			pol, err := forecast.PolicyByName(req.Policy)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			f = f.WithPolicy(pol)
		}

		resp := retriever.Forecast(c.UserContext(), req.Adm4)

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(f.Format(resp, time.Now()))
	})
}

// messageQuery holds query parameters for the message endpoint. Adm4 is
// opaque and passed upstream verbatim; empty means the configured default.
type messageQuery struct {
	Adm4   string
	Policy string `validate:"omitempty,oneof=siang-malam hari-ini"`
}

func parseMessageQuery(c *fiber.Ctx) (messageQuery, error) {
	var q messageQuery

	q.Adm4 = c.Query("adm4")
	q.Policy = c.Query("policy")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
