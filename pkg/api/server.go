package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reiseplan/reiseplan/pkg/api/routes"
	"github.com/reiseplan/reiseplan/pkg/provider"
)

func NewApp(journeyProvider provider.Provider) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("/version", routes.APIVersion)
	webApp.Get("/health", routes.Health)

	routes.SearchRouter(webApp.Group("/search"), journeyProvider)

	return webApp
}

func SetupServer(listen string, journeyProvider provider.Provider) error {
	return NewApp(journeyProvider).Listen(listen)
}
