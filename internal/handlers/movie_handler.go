package handlers

import (
	"errors"
	"strconv"

	"movie-demo/internal/models"
	"movie-demo/internal/repository"
	"movie-demo/internal/services"
	"movie-demo/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetMovie godoc
// @Summary Get a movie record
// @Description Retrieval endpoint used by the movie display component. Returns the bare record.
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie "Movie record"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.Context(), id)
	if err != nil {
		return h.movieLookupError(c, id, err)
	}
	return c.JSON(movie)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie by its ID
// @Tags admin
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /api/v1/movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.Context(), id)
	if err != nil {
		return h.movieLookupError(c, id, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// ListMovies godoc
// @Summary List movies
// @Description List every movie in insertion order
// @Tags admin
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /api/v1/movies [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListMovies(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// CreateMovie godoc
// @Summary Create a movie
// @Description Create a new movie record
// @Tags admin
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie request object"
// @Success 201 {object} utils.StandardResponse "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /api/v1/movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie := &models.Movie{
		CoverImg: req.CoverImg,
		Title:    req.Title,
		Desc:     req.Desc,
	}

	if err := h.service.CreateMovie(c.Context(), movie); err != nil {
		if errors.Is(err, services.ErrTitleRequired) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create movie")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Replace the editable fields of a movie. A replaced cover uploaded through the presign endpoint is deleted.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie request object"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /api/v1/movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie := &models.Movie{
		CoverImg: req.CoverImg,
		Title:    req.Title,
		Desc:     req.Desc,
	}

	if err := h.service.UpdateMovie(c.Context(), id, movie); err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrMovieNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie by ID and its uploaded cover image
// @Tags admin
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /api/v1/movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(c.Context(), id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

func (h *MovieHandler) movieLookupError(c *fiber.Ctx, id uint, err error) error {
	if errors.Is(err, repository.ErrMovieNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}
	h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
