package validation

import (
	"net/http"
	"propbook/infras/otel"
	"propbook/internal/domains/validation/model/dto"
	"propbook/internal/domains/validation/service"
	"propbook/shared/constant"
	"propbook/shared/validator"
	"propbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Validation
	otel    otel.Otel
}

func New(service service.Validation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/validate-phone", handler.ValidatePhone)
	router.Post("/validate-city", handler.ValidateCity)
	router.Post("/validate-date", handler.ValidateDate)
	router.Post("/collect-name", handler.CollectName)
}

// ValidatePhone reports whether phone_number is exactly ten digits.
// @Summary Validate a phone number
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.ValidatePhoneRequest true "Validate Phone Request"
// @Success 200 {object} dto.ValidityResponse
// @Router /validate-phone [post]
func (handler *Handler) ValidatePhone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidatePhone")
	defer scope.End()

	req := dto.ValidatePhoneRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Phone(ctx, req))
}

// ValidateCity reports whether city is one of the served cities.
// @Summary Validate a city
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.ValidateCityRequest true "Validate City Request"
// @Success 200 {object} dto.ValidityResponse
// @Router /validate-city [post]
func (handler *Handler) ValidateCity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateCity")
	defer scope.End()

	req := dto.ValidateCityRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.City(ctx, req))
}

// ValidateDate reports whether date is a DD-MM-YYYY date that is not in the past.
// @Summary Validate a booking date
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.ValidateDateRequest true "Validate Date Request"
// @Success 200 {object} dto.ValidityResponse
// @Router /validate-date [post]
func (handler *Handler) ValidateDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateDate")
	defer scope.End()

	req := dto.ValidateDateRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Date(ctx, req))
}

// CollectName trims the given name and reports whether anything is left.
// @Summary Collect a guest name
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.ValidateNameRequest true "Collect Name Request"
// @Success 200 {object} dto.NameValidityResponse
// @Router /collect-name [post]
func (handler *Handler) CollectName(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CollectName")
	defer scope.End()

	req := dto.ValidateNameRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Name(ctx, req))
}
