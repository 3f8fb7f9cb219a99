package app

import (
	"fmt"
	"log"
	"os"

	"inkwell-cards/app/controller"
	"inkwell-cards/app/router"
	"inkwell-cards/db"
	"inkwell-cards/repository"
	"inkwell-cards/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Get credentials path from environment variable
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}

	// Initialize Drive service (object storage for logo/signature/template assets)
	driveService, err := service.NewDriveService(credentialsPath)
	if err != nil {
		return err
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository()
	templateRepo := repository.NewTemplateRepository()

	// Assemble the render strategy chain: remote screenshot service first,
	// then a local browser when one is installed, then the raster
	// compositor as the tier of last resort.
	remote := service.NewRemoteRenderer(
		os.Getenv("SCREENSHOT_API_URL"),
		os.Getenv("SCREENSHOT_API_KEY"),
	)
	chrome := service.NewChromeRenderer()
	compositor := service.NewCompositor()

	if !remote.Available() {
		log.Printf("⚠️  Screenshot service not configured; rendering will use local tiers only")
	}
	if !chrome.Available() {
		log.Printf("⚠️  No Chrome/Chromium binary found; local browser tier disabled")
	}

	chain := service.NewRenderChain(remote, chrome, compositor)

	// Initialize render pipeline
	inliner := service.NewAssetInliner(driveService)
	builder := service.NewTemplateBuilder()
	renderService := service.NewRenderService(orderRepo, templateRepo, inliner, builder, chain)

	// Create controllers
	controllers := &router.Controllers{
		Render:   controller.NewRenderController(renderService, orderRepo),
		Template: controller.NewTemplateController(templateRepo),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
