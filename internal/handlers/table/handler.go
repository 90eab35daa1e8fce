package table

import (
	"net/http"
	"tablebook/infras/otel"
	"tablebook/internal/domains/table/model/dto"
	"tablebook/internal/domains/table/service"
	"tablebook/shared/constant"
	"tablebook/shared/validator"
	"tablebook/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Table
	otel    otel.Otel
}

func New(service service.Table, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddTable)
		routerGroup.Get("/", handler.GetTables)
		routerGroup.Patch("/{tableId}", handler.UpdateTable)
		routerGroup.Delete("/{tableId}", handler.DeleteTable)
	})
}

// AddTable handles adding a table to a restaurant.
// @Summary Add a table
// @Description Add a new table to a restaurant with a table number and capacity.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body dto.AddTableRequest true "Add Table Request"
// @Success 201 {object} response.Data[dto.TableResponse] "Table added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/tables [post]
func (handler *Handler) AddTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTable")
	defer scope.End()

	restaurantID := chi.URLParam(request, constant.RequestParamID)

	req := dto.AddTableRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	table, err := handler.service.Add(ctx, restaurantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add table")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Table added successfully")

	response.WithJSON(writer, http.StatusCreated, table)
}

// GetTables lists the tables of a restaurant.
// @Summary List tables
// @Description Retrieve all tables of a restaurant ordered by table number.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} response.Data[dto.GetTablesResponse] "List of tables"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/tables [get]
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)

	tables, err := handler.service.List(ctx, restaurantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tables retrieved successfully")

	response.WithJSON(w, http.StatusOK, tables)
}

// UpdateTable updates a table's capacity.
// @Summary Update a table
// @Description Update the capacity of an existing table.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param tableId path string true "Table ID"
// @Param request body dto.UpdateTableRequest true "Update Table Request"
// @Success 200 {object} response.Data[dto.TableResponse] "Table updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/tables/{tableId} [patch]
func (handler *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTable")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	tableID := chi.URLParam(r, constant.RequestParamTableID)

	req := dto.UpdateTableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	table, err := handler.service.Update(ctx, restaurantID, tableID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table updated successfully")

	response.WithJSON(w, http.StatusOK, table)
}

// DeleteTable removes a table from a restaurant.
// @Summary Delete a table
// @Description Remove a table that has no confirmed reservations.
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param tableId path string true "Table ID"
// @Success 200 {object} response.Message "Table deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/restaurants/{id}/tables/{tableId} [delete]
func (handler *Handler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTable")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamID)
	tableID := chi.URLParam(r, constant.RequestParamTableID)

	if err := handler.service.Delete(ctx, restaurantID, tableID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table deleted successfully")

	response.WithMessage(w, http.StatusOK, "Table deleted successfully")
}
