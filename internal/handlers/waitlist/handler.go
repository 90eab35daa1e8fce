package waitlist

import (
	"net/http"
	"tablebook/infras/otel"
	"tablebook/internal/domains/waitlist/model/dto"
	"tablebook/internal/domains/waitlist/service"
	"tablebook/shared/constant"
	"tablebook/shared/validator"
	"tablebook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Waitlist
	otel    otel.Otel
}

func New(service service.Waitlist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/waitlist", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddWaitlistEntry)
		routerGroup.Get("/", handler.GetWaitlist)
		routerGroup.Patch("/{waitlistId}", handler.UpdateWaitlistStatus)
	})
}

// AddWaitlistEntry puts a party on the waitlist for a date and time.
// @Summary Add a waitlist entry
// @Description Add a party to the restaurant's waitlist for a requested date and time.
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.AddWaitlistEntryRequest true "Add Waitlist Entry Request"
// @Success 201 {object} response.Data[dto.WaitlistEntryResponse] "Waitlist entry created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/waitlist [post]
func (handler *Handler) AddWaitlistEntry(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddWaitlistEntry")
	defer scope.End()

	restaurantID := chi.URLParam(request, constant.RequestParamID)

	req := dto.AddWaitlistEntryRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	entry, err := handler.service.Add(ctx, restaurantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add waitlist entry")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Waitlist entry created successfully")

	response.WithJSON(writer, http.StatusCreated, entry)
}

// GetWaitlist lists the waitlist of a restaurant in arrival order.
// @Summary List waitlist entries
// @Description Retrieve the waitlist of a restaurant, optionally filtered by status.
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param status query string false "Filter by status (waiting, notified, expired)"
// @Success 200 {object} response.Data[dto.GetWaitlistResponse] "List of waitlist entries"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/waitlist [get]
func (handler *Handler) GetWaitlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWaitlist")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	status := r.URL.Query().Get(constant.RequestParamStatus)

	entries, err := handler.service.List(ctx, restaurantID, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get waitlist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Waitlist retrieved successfully")

	response.WithJSON(w, http.StatusOK, entries)
}

// UpdateWaitlistStatus updates the status of a waitlist entry.
// @Summary Update a waitlist entry status
// @Description Move a waitlist entry between waiting, notified and expired.
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param waitlistId path string true "Waitlist Entry ID"
// @Param request body dto.UpdateWaitlistStatusRequest true "Update Waitlist Status Request"
// @Success 200 {object} response.Data[dto.WaitlistEntryResponse] "Waitlist entry updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/waitlist/{waitlistId} [patch]
func (handler *Handler) UpdateWaitlistStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateWaitlistStatus")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	waitlistID := chi.URLParam(r, constant.RequestParamWaitlistID)

	req := dto.UpdateWaitlistStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	entry, err := handler.service.UpdateStatus(ctx, restaurantID, waitlistID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update waitlist entry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Waitlist entry updated successfully")

	response.WithJSON(w, http.StatusOK, entry)
}
