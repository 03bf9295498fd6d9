package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"vidlib/internal/errors"
	"vidlib/internal/service"
)

// MovieHandler handles movie endpoints.
type MovieHandler struct {
	movieService service.MovieService
}

// NewMovieHandler creates a new movie handler.
func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// MovieRequest represents a movie create/update request.
type MovieRequest struct {
	Title           string  `json:"title" validate:"required,max=200"`
	GenreID         string  `json:"genre_id" validate:"required,uuid"`
	NumberInStock   int     `json:"number_in_stock" validate:"gte=0,lte=255"`
	DailyRentalRate float64 `json:"daily_rental_rate" validate:"gte=0,lte=255"`
}

func (r *MovieRequest) toInput() (service.MovieInput, error) {
	genreID, err := uuid.Parse(r.GenreID)
	if err != nil {
		return service.MovieInput{}, err
	}
	return service.MovieInput{
		Title:           r.Title,
		GenreID:         genreID,
		NumberInStock:   r.NumberInStock,
		DailyRentalRate: decimal.NewFromFloat(r.DailyRentalRate),
	}, nil
}

// List godoc
// @Summary List all movies
// @Tags movies
// @Produce json
// @Success 200 {array} model.Movie
// @Failure 500 {object} errors.ErrorResponse
// @Router /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.movieService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, movies)
}

// Get godoc
// @Summary Get a movie by ID
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	movie, err := h.movieService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, movie)
}

// Create godoc
// @Summary Create a movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MovieRequest true "Movie data"
// @Success 201 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	var req MovieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid genre_id",
			Code:  "INVALID_ID",
		})
	}
	movie, err := h.movieService.Create(c.Request().Context(), in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, movie)
}

// Update godoc
// @Summary Update a movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Param request body MovieRequest true "Movie data"
// @Success 200 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [put]
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req MovieRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid genre_id",
			Code:  "INVALID_ID",
		})
	}
	movie, err := h.movieService.Update(c.Request().Context(), id, in)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, movie)
}

// Delete godoc
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Success 200 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	movie, err := h.movieService.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, movie)
}
