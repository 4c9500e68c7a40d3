package service

import (
	"context"
	"fmt"
	"propbook/infras/otel"
	"propbook/internal/domains/knowledge/model/dto"
	"propbook/shared/constant"
)

// Knowledge answers questions about a property. The current implementation
// returns a canned answer.
type Knowledge interface {
	Answer(ctx context.Context, req dto.QueryRequest) dto.AnswerResponse
}

type serviceImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Knowledge {
	return &serviceImpl{otel: otel}
}

func (s *serviceImpl) Answer(ctx context.Context, req dto.QueryRequest) dto.AnswerResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Answer")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"knowledge.query":    req.Query,
		"knowledge.property": req.Property,
	})

	return dto.AnswerResponse{
		Answer: fmt.Sprintf("Sample answer for '%s' about %s.", req.Query, req.Property),
	}
}
