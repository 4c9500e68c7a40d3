package knowledge

import (
	"net/http"
	"propbook/infras/otel"
	"propbook/internal/domains/knowledge/model/dto"
	"propbook/internal/domains/knowledge/service"
	"propbook/shared/constant"
	"propbook/shared/validator"
	"propbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Knowledge
	otel    otel.Otel
}

func New(service service.Knowledge, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/knowledge-base", handler.Query)
}

// Query answers a question about a property.
// @Summary Ask the knowledge base
// @Tags Knowledge
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Knowledge Base Query"
// @Success 200 {object} dto.AnswerResponse
// @Router /knowledge-base [post]
func (handler *Handler) Query(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Query")
	defer scope.End()

	req := dto.QueryRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Answer(ctx, req))
}
