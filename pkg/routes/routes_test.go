package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func registered(app *fiber.App) map[string]bool {
	set := map[string]bool{}
	for _, routes := range app.Stack() {
		for _, r := range routes {
			set[r.Method+" "+r.Path] = true
		}
	}
	return set
}

func TestGameRoutes(t *testing.T) {
	app := fiber.New()
	GameRoutes(app)

	set := registered(app)
	for _, want := range []string{
		"POST /game/create",
		"GET /game/all",
		"GET /game/find",
		"GET /game/verify",
	} {
		if !set[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}

func TestAuthRoutes(t *testing.T) {
	app := fiber.New()
	AuthRoutes(app)

	set := registered(app)
	for _, want := range []string{
		"POST /user/create",
		"POST /user/login",
	} {
		if !set[want] {
			t.Errorf("route %q not registered", want)
		}
	}
}
