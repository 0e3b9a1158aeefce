package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/tanahmerapi/backend/app/controllers"
	"github.com/tanahmerapi/backend/internal/pkg/middleware"
)

type ApiRouter struct {
}

// InstallRouter registers the JSON API. Reads are public, the public
// site consumes them directly. Every mutation sits behind the admin
// API key.
func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Tanah Merapi API",
		})
	})

	admin := middleware.AdminAPIKeyMiddleware()

	packages := api.Group("/packages")
	packages.Get("/", controllers.HandleGetPackages)
	packages.Get("/:id", controllers.HandleGetPackage)
	packages.Post("/", admin, controllers.HandleCreatePackage)
	packages.Put("/:id", admin, controllers.HandleUpdatePackage)
	packages.Delete("/:id", admin, controllers.HandleDeletePackage)

	promotions := api.Group("/promotions")
	promotions.Get("/", controllers.HandleGetPromotions)
	promotions.Get("/:id", controllers.HandleGetPromotion)
	promotions.Post("/", admin, controllers.HandleCreatePromotion)
	promotions.Put("/:id", admin, controllers.HandleUpdatePromotion)
	promotions.Delete("/:id", admin, controllers.HandleDeletePromotion)

	slides := api.Group("/slides")
	slides.Get("/", controllers.HandleGetSlides)
	slides.Post("/", admin, controllers.HandleCreateSlide)
	slides.Put("/:id", admin, controllers.HandleUpdateSlide)
	slides.Delete("/:id", admin, controllers.HandleDeleteSlide)

	menuItems := api.Group("/menu-items")
	menuItems.Get("/", controllers.HandleGetMenuItems)
	menuItems.Get("/:id", controllers.HandleGetMenuItem)
	menuItems.Post("/", admin, controllers.HandleCreateMenuItem)
	menuItems.Put("/:id", admin, controllers.HandleUpdateMenuItem)
	menuItems.Delete("/:id", admin, controllers.HandleDeleteMenuItem)

	settings := api.Group("/site-settings")
	settings.Get("/", controllers.HandleGetSiteSettings)
	settings.Get("/:key", controllers.HandleGetSiteSetting)
	settings.Put("/:key", admin, controllers.HandleUpsertSiteSetting)
	settings.Delete("/:key", admin, controllers.HandleDeleteSiteSetting)

	social := api.Group("/social-media")
	social.Get("/", controllers.HandleGetSocialMedia)
	social.Post("/", admin, controllers.HandleCreateSocialMedia)
	social.Put("/:id", admin, controllers.HandleUpdateSocialMedia)
	social.Delete("/:id", admin, controllers.HandleDeleteSocialMedia)

	api.Post("/upload", admin, controllers.HandleUploadImage)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
