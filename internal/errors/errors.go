package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrGenreNotFound is returned when a genre is not found.
	ErrGenreNotFound = errors.New("the genre with the given ID was not found")
	// ErrMovieNotFound is returned when a movie is not found.
	ErrMovieNotFound = errors.New("the movie with the given ID was not found")
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("the customer with the given ID was not found")
	// ErrRentalNotFound is returned when no rental matches a lookup.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidGenre is returned when a referenced genre does not exist.
	ErrInvalidGenre = errors.New("invalid genre")
	// ErrInvalidMovie is returned when a referenced movie does not exist.
	ErrInvalidMovie = errors.New("invalid movie")
	// ErrInvalidCustomer is returned when a referenced customer does not exist.
	ErrInvalidCustomer = errors.New("invalid customer")
	// ErrMovieNotInStock is returned when a movie has no units available.
	ErrMovieNotInStock = errors.New("movie not in stock")
	// ErrReturnAlreadyProcessed is returned when a rental was already closed.
	ErrReturnAlreadyProcessed = errors.New("return already processed")

	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("user already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Not-found lookups
// map to 404; dangling references and stock exhaustion are bad input
// (400); duplicate returns are a conflict surfaced as 400, matching the
// API's documented failure codes. Anything unknown is a generic 500 so
// store internals never leak.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrGenreNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "GENRE_NOT_FOUND")
	case errors.Is(err, ErrMovieNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MOVIE_NOT_FOUND")
	case errors.Is(err, ErrCustomerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CUSTOMER_NOT_FOUND")
	case errors.Is(err, ErrRentalNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RENTAL_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidGenre):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_GENRE")
	case errors.Is(err, ErrInvalidMovie):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_MOVIE")
	case errors.Is(err, ErrInvalidCustomer):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CUSTOMER")
	case errors.Is(err, ErrMovieNotInStock):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MOVIE_NOT_IN_STOCK")
	case errors.Is(err, ErrReturnAlreadyProcessed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "RETURN_ALREADY_PROCESSED")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
