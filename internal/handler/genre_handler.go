package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vidlib/internal/errors"
	"vidlib/internal/service"
)

// GenreHandler handles genre endpoints.
type GenreHandler struct {
	genreService service.GenreService
}

// NewGenreHandler creates a new genre handler.
func NewGenreHandler(genreService service.GenreService) *GenreHandler {
	return &GenreHandler{genreService: genreService}
}

// GenreRequest represents a genre create/update request.
type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// List godoc
// @Summary List all genres
// @Tags genres
// @Produce json
// @Success 200 {array} model.Genre
// @Failure 500 {object} errors.ErrorResponse
// @Router /genres [get]
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.genreService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, genres)
}

// Get godoc
// @Summary Get a genre by ID
// @Tags genres
// @Produce json
// @Param id path string true "Genre ID"
// @Success 200 {object} model.Genre
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /genres/{id} [get]
func (h *GenreHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	genre, err := h.genreService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, genre)
}

// Create godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenreRequest true "Genre data"
// @Success 201 {object} model.Genre
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /genres [post]
func (h *GenreHandler) Create(c echo.Context) error {
	var req GenreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	genre, err := h.genreService.Create(c.Request().Context(), req.Name)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, genre)
}

// Update godoc
// @Summary Update a genre
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Param request body GenreRequest true "Genre data"
// @Success 200 {object} model.Genre
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /genres/{id} [put]
func (h *GenreHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req GenreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	genre, err := h.genreService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, genre)
}

// Delete godoc
// @Summary Delete a genre
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Param id path string true "Genre ID"
// @Success 200 {object} model.Genre
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /genres/{id} [delete]
func (h *GenreHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	genre, err := h.genreService.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, genre)
}

// parseID rejects malformed path identifiers before any lookup happens.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return id, nil
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}
