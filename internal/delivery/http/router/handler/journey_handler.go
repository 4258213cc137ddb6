// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wayfarer/internal/delivery/http/response"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// JourneyHandlerParams holds dependencies for JourneyHandler, injected by Fx.
type JourneyHandlerParams struct {
	fx.In

	JourneyUC usecase.JourneyUsecase
	ShareUC   usecase.ShareUsecase
	Logger    *slog.Logger
}

// JourneyHandler holds dependencies for journey-related handlers
type JourneyHandler struct {
	journeyUC usecase.JourneyUsecase
	shareUC   usecase.ShareUsecase
	logger    *slog.Logger
}

// NewJourneyHandler is the constructor for JourneyHandler
func NewJourneyHandler(params JourneyHandlerParams) *JourneyHandler {
	return &JourneyHandler{
		journeyUC: params.JourneyUC,
		shareUC:   params.ShareUC,
		logger:    params.Logger,
	}
}

// CreateJourneyRequest represents the request body for recording a journey
type CreateJourneyRequest struct {
	StartingLocation   string    `json:"starting_location" validate:"required"`
	ArrivalLocation    string    `json:"arrival_location" validate:"required"`
	StartTime          time.Time `json:"start_time" validate:"required"`
	ArrivalTime        time.Time `json:"arrival_time" validate:"required"`
	TransportationType string    `json:"transportation_type" validate:"required"`
	RouteDistanceKm    float64   `json:"route_distance_km" validate:"min=0"`
}

// ShareJourneyRequest represents the request body for sharing a journey
type ShareJourneyRequest struct {
	ReceivingUserIDs []uuid.UUID `json:"receiving_user_ids" validate:"required,min=1"`
}

// CreateJourney handles recording a new journey for the authenticated user
func (h *JourneyHandler) CreateJourney(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateJourneyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid journey input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.JourneyInput{
		StartingLocation:   req.StartingLocation,
		ArrivalLocation:    req.ArrivalLocation,
		StartTime:          req.StartTime,
		ArrivalTime:        req.ArrivalTime,
		TransportationType: req.TransportationType,
		RouteDistanceKm:    req.RouteDistanceKm,
	}

	journeyID, err := h.journeyUC.AddJourney(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": journeyID.String()}, "Journey recorded successfully")
}

// GetJourney handles retrieving a single journey by ID
func (h *JourneyHandler) GetJourney(c echo.Context) error {
	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid journey ID")
	}

	journey, err := h.journeyUC.GetJourneyByID(c.Request().Context(), journeyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, journey, "Journey retrieved successfully")
}

// ListJourneys handles retrieving all journeys of the authenticated user
func (h *JourneyHandler) ListJourneys(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	journeys, err := h.journeyUC.GetJourneysForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, journeys, "Journeys retrieved successfully")
}

// DeleteJourney handles deleting a journey together with its links and shares
func (h *JourneyHandler) DeleteJourney(c echo.Context) error {
	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid journey ID")
	}

	if err := h.journeyUC.DeleteJourney(c.Request().Context(), journeyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Journey deleted successfully"}, "Journey deleted successfully")
}

// FilterJourneys handles the filtered, ordered and paginated journey listing
func (h *JourneyHandler) FilterJourneys(c echo.Context) error {
	filter := &usecase.JourneyFilter{
		OrderBy:   c.QueryParam("order_by"),
		Direction: c.QueryParam("direction"),
	}

	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID filter")
		}
		filter.UserID = &userID
	}

	if raw := c.QueryParam("transport_types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.TransportTypes = append(filter.TransportTypes, t)
			}
		}
	}

	startFrom, err := parseTimeParam(c, "start_from")
	if err != nil {
		return response.BadRequest(c, "INVALID_TIME", "Invalid start_from timestamp")
	}
	filter.StartFrom = startFrom

	arrivalTo, err := parseTimeParam(c, "arrival_to")
	if err != nil {
		return response.BadRequest(c, "INVALID_TIME", "Invalid arrival_to timestamp")
	}
	filter.ArrivalTo = arrivalTo

	filter.Page = parseIntParam(c, "page")
	filter.PageSize = parseIntParam(c, "page_size")

	page, err := h.journeyUC.FilterJourneys(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Journeys retrieved successfully")
}

// MonthlyDistances handles the per-user monthly distance aggregation listing
func (h *JourneyHandler) MonthlyDistances(c echo.Context) error {
	query := &usecase.MonthlyDistanceQuery{
		OrderBy: c.QueryParam("order_by"),
	}

	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID filter")
		}
		query.UserID = &userID
	}

	if raw := c.QueryParam("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_YEAR", "Invalid year filter")
		}
		query.Year = &year
	}

	if raw := c.QueryParam("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return response.BadRequest(c, "INVALID_MONTH", "Invalid month filter")
		}
		query.Month = &month
	}

	query.Page = parseIntParam(c, "page")
	query.PageSize = parseIntParam(c, "page_size")

	distances, err := h.journeyUC.MonthlyDistances(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, distances, "Monthly distances retrieved successfully")
}

// ShareJourney handles sharing a journey with one or more users
func (h *JourneyHandler) ShareJourney(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid journey ID")
	}

	var req ShareJourneyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.shareUC.ShareJourney(c.Request().Context(), journeyID, userID, req.ReceivingUserIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Journey shared successfully")
}

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

func parseTimeParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func parseIntParam(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return n
}
