// Package web serves the bundled records screen. The assets are compiled
// into the binary so a deployment is still a single artifact.
package web

import (
	"embed"
	"io/fs"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

//go:embed dist
var assets embed.FS

// Register mounts the web UI under /app.
func Register(app *fiber.App) {
	dist, err := fs.Sub(assets, "dist")
	if err != nil {
		// embed guarantees the subtree exists; reaching this means the
		// binary was built without the assets.
		panic(err)
	}

	app.Get("/app*", static.New("", static.Config{
		FS: dist,
	}))

	app.Get("/", func(c fiber.Ctx) error {
		return c.Redirect().To("/app/")
	})
}
