package routes

import (
	"movie-demo/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, movieHandler *handlers.MovieHandler, pageHandler *handlers.PageHandler, uploadHandler *handlers.UploadHandler) {
	// Pages are registered before the retrieval endpoint so /movies/:id
	// does not capture them.
	pages := app.Group("/movies")
	{
		pages.Get("/ssr", pageHandler.SSR)
		pages.Get("/csr", pageHandler.CSR)
		pages.Get("/csr/item", pageHandler.CSRItem)
		pages.Get("/:id", movieHandler.GetMovie)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.ListMovies)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Put("/:id", movieHandler.UpdateMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
	}

	if uploadHandler != nil {
		upload := v1.Group("/upload")
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
