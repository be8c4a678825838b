package observability

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteLabel(t *testing.T) {
	var labels []string
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		labels = append(labels, MethodLabel(c)+" "+RouteLabel(c))
		return err
	})
	app.Get("/things/:id<int>", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for _, target := range []string{"/things/1", "/things/2", "/things/abc", "/nowhere"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.Equal(t, []string{
		"GET /things/:id<int>",
		"GET /things/:id<int>",
		"GET " + UnmatchedRoute,
		"GET " + UnmatchedRoute,
	}, labels)
}
