package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidlib/internal/errors"
	"vidlib/internal/service"
)

// ReturnHandler handles the return endpoint.
type ReturnHandler struct {
	rentalService service.RentalService
}

// NewReturnHandler creates a new return handler.
func NewReturnHandler(rentalService service.RentalService) *ReturnHandler {
	return &ReturnHandler{rentalService: rentalService}
}

// Process godoc
// @Summary Return a rented movie
// @Tags returns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RentalRequest true "Customer and movie"
// @Success 200 {object} model.Rental
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /returns [post]
func (h *ReturnHandler) Process(c echo.Context) error {
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

	rental, err := h.rentalService.Return(c.Request().Context(), customerID, movieID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rental)
}
