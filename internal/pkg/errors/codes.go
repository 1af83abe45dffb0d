package errors

import "net/http"

var (
	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	ErrArrivalPointNotFound = New(
		"ARRIVAL_POINT_NOT_FOUND",
		"Arrival point not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found",
		http.StatusNotFound,
	)

	ErrCarriageNotFound = New(
		"CARRIAGE_NOT_FOUND",
		"Carriage not found",
		http.StatusNotFound,
	)

	ErrCarriageTypeNotFound = New(
		"CARRIAGE_TYPE_NOT_FOUND",
		"Carriage type not found",
		http.StatusNotFound,
	)

	ErrTicketNotFound = New(
		"TICKET_NOT_FOUND",
		"Ticket not found",
		http.StatusNotFound,
	)

	ErrOrderNotFound = New(
		"ORDER_NOT_FOUND",
		"Order not found",
		http.StatusNotFound,
	)

	ErrDiscountNotFound = New(
		"DISCOUNT_NOT_FOUND",
		"Discount not found",
		http.StatusNotFound,
	)

	ErrDiscountTypeNotFound = New(
		"DISCOUNT_TYPE_NOT_FOUND",
		"Discount type not found",
		http.StatusNotFound,
	)

	ErrArrivalNotOnRoute = New(
		"ARRIVAL_NOT_ON_ROUTE",
		"No such arrival point in the route",
		http.StatusNotFound,
	)

	ErrDepartureNotOnRoute = New(
		"DEPARTURE_NOT_ON_ROUTE",
		"No such departure point in the route",
		http.StatusNotFound,
	)

	ErrInvalidSegmentOrder = New(
		"INVALID_SEGMENT_ORDER",
		"Departure stop must come before the arrival stop",
		http.StatusBadRequest,
	)

	ErrInvalidStopOrder = New(
		"INVALID_STOP_ORDER",
		"Stop prices and arrival times must not decrease along the route",
		http.StatusBadRequest,
	)

	ErrFirstArrivalBeforeDeparture = New(
		"FIRST_ARRIVAL_BEFORE_DEPARTURE",
		"First stop must arrive strictly after the route departure",
		http.StatusBadRequest,
	)

	ErrSeatTaken = New(
		"SEAT_TAKEN",
		"This seat is not available",
		http.StatusConflict,
	)

	ErrSeatOutOfRange = New(
		"SEAT_OUT_OF_RANGE",
		"Seat number is not found in this carriage",
		http.StatusBadRequest,
	)

	ErrSeatAmountExceeded = New(
		"SEAT_AMOUNT_EXCEEDED",
		"Max seat amount is 100",
		http.StatusBadRequest,
	)

	ErrOrderNotPayable = New(
		"ORDER_NOT_PAYABLE",
		"Order is not eligible for checkout",
		http.StatusConflict,
	)

	ErrDiscountExhausted = New(
		"DISCOUNT_EXHAUSTED",
		"Discount usage limit is reached",
		http.StatusConflict,
	)

	ErrPaymentProvider = New(
		"PAYMENT_PROVIDER_ERROR",
		"Payment provider request failed",
		http.StatusBadGateway,
	)

	ErrInvalidStatus = New(
		"INVALID_STATUS",
		"No such status",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Operation is not allowed for this user",
		http.StatusForbidden,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
