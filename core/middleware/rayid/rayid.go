package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request RayID.
const HeaderName = "X-Ray-ID"

// LocalsKey is where the RayID is stored on the Fiber context.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a RayID to every request. An incoming
// X-Ray-ID header is reused so that upstream proxies can propagate their own.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
