package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vidlib/internal/errors"
	"vidlib/internal/service"
)

// RentalHandler handles rental endpoints.
type RentalHandler struct {
	rentalService service.RentalService
}

// NewRentalHandler creates a new rental handler.
func NewRentalHandler(rentalService service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

// RentalRequest identifies the customer/movie pair for a checkout or a
// return.
type RentalRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	MovieID    string `json:"movie_id" validate:"required,uuid"`
}

func (r *RentalRequest) ids() (customerID, movieID uuid.UUID, err error) {
	customerID, err = uuid.Parse(r.CustomerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	movieID, err = uuid.Parse(r.MovieID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return customerID, movieID, nil
}

// List godoc
// @Summary List all rentals, most recent first
// @Tags rentals
// @Produce json
// @Success 200 {array} model.Rental
// @Failure 500 {object} errors.ErrorResponse
// @Router /rentals [get]
func (h *RentalHandler) List(c echo.Context) error {
	rentals, err := h.rentalService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rentals)
}

// Get godoc
// @Summary Get a rental by ID
// @Tags rentals
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} model.Rental
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	rental, err := h.rentalService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rental)
}

// Create godoc
// @Summary Rent a movie to a customer
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RentalRequest true "Customer and movie"
// @Success 201 {object} model.Rental
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /rentals [post]
func (h *RentalHandler) Create(c echo.Context) error {
	var req RentalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	customerID, movieID, err := req.ids()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}

	rental, err := h.rentalService.Create(c.Request().Context(), customerID, movieID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, rental)
}
