package reservation

import (
	"net/http"
	"strconv"
	"tablebook/infras/otel"
	"tablebook/internal/domains/reservation/model/dto"
	"tablebook/internal/domains/reservation/service"
	"tablebook/shared/constant"
	"tablebook/shared/failure"
	"tablebook/shared/validator"
	"tablebook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Reservation
	availability service.Availability
	otel         otel.Otel
}

func New(service service.Reservation, availability service.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetAvailability)

	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{reservationId}", handler.GetReservationByID)
		routerGroup.Patch("/{reservationId}", handler.ModifyReservation)
		routerGroup.Delete("/{reservationId}", handler.CancelReservation)
	})
}

// GetAvailability lists the bookable start times for a date and party size.
// @Summary Get available time slots
// @Description Retrieve the start times at which the whole venue can seat the party, with the table that would be assigned.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param party_size query int true "Party size"
// @Param duration query int false "Duration in minutes"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Available slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	partySize, err := queryInt(r, constant.RequestParamPartySize)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse party size")

		response.WithError(w, err)

		return
	}

	duration, err := queryInt(r, constant.RequestParamDuration)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse duration")

		response.WithError(w, err)

		return
	}

	slots, err := handler.availability.Slots(ctx, restaurantID, date, partySize, duration)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}

// CreateReservation handles the creation of a new reservation.
// @Summary Create a new reservation
// @Description Book a table for a guest, assigning the smallest suitable free table.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	restaurantID := chi.URLParam(request, constant.RequestParamID)

	req := dto.CreateReservationRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Create(ctx, restaurantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(writer, http.StatusCreated, reservation)
}

// GetReservations lists reservations for a date, optionally filtered by status.
// @Summary List reservations by date
// @Description Retrieve the reservations of a restaurant on a date, ordered by start time.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param status query string false "Filter by status (pending, confirmed, completed, cancelled)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	reservations, err := handler.service.ListByDate(ctx, restaurantID, date, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation by its unique identifier.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param reservationId path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/reservations/{reservationId} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	reservationID := chi.URLParam(r, constant.RequestParamReservationID)

	reservation, err := handler.service.GetByID(ctx, restaurantID, reservationID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// ModifyReservation updates the time, duration or party size of a reservation.
// @Summary Modify a reservation
// @Description Change a reservation's start time, duration or party size, reassigning the table if needed.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param reservationId path string true "Reservation ID"
// @Param request body dto.ModifyReservationRequest true "Modify Reservation Request"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation modified successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/reservations/{reservationId} [patch]
func (handler *Handler) ModifyReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ModifyReservation")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	reservationID := chi.URLParam(r, constant.RequestParamReservationID)

	req := dto.ModifyReservationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Modify(ctx, restaurantID, reservationID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to modify reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation modified successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// CancelReservation cancels a reservation by its ID.
// @Summary Cancel a reservation
// @Description Cancel a reservation, freeing its table and sweeping the waitlist for the freed slot.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param reservationId path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/reservations/{reservationId} [delete]
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	reservationID := chi.URLParam(r, constant.RequestParamReservationID)

	if err := handler.service.Cancel(ctx, restaurantID, reservationID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Reservation cancelled successfully")
}

func queryInt(r *http.Request, param string) (int, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.BadRequestFromString(param + " must be a number") // nolint:wrapcheck
	}

	return value, nil
}
