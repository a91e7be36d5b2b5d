package api

import (
	"errors"

	"finsort/docs"
	"finsort/internal/api/handlers"
	"finsort/pkg/config"
	"finsort/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	importHandler *handlers.ImportHandler,
	taxonomyHandler *handlers.TaxonomyHandler,
	fileHandler *handlers.FileHandler,
	cfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "finsort",
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(appLogger))

	// Importing docs registers the swagger document through its init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Statement import and classification
	app.Post("/uploadcsv", importHandler.UploadCSV)
	app.Post("/reclassify", importHandler.Reclassify)
	app.Post("/pivot-table", importHandler.PivotTable)

	// Taxonomy
	app.Post("/addnewvalue", taxonomyHandler.AddKeyword)
	app.Post("/addnewclassification", taxonomyHandler.AddCategory)
	app.Get("/expense-options", taxonomyHandler.ExpenseOptions)
	app.Get("/income-options", taxonomyHandler.IncomeOptions)

	// Stored files
	files := app.Group("/files")
	files.Get("", fileHandler.ListFiles)
	files.Get("/:id", fileHandler.GetFile)
	files.Patch("/:id", fileHandler.RenameFile)
	files.Delete("/:id", fileHandler.DeleteFile)
	files.Post("/:id/move", fileHandler.MoveFile)
	files.Post("/:id/reclassify", fileHandler.ReclassifyFile)
	files.Get("/:id/totals", fileHandler.FileTotals)

	folders := app.Group("/folders")
	folders.Post("", fileHandler.CreateFolder)
	folders.Patch("/:id", fileHandler.RenameFolder)
	folders.Delete("/:id", fileHandler.DeleteFolder)
	folders.Post("/:id/move", fileHandler.MoveFolder)

	return app
}
