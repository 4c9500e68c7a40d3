package service

import (
	"context"
	"propbook/infras/metrics"
	"propbook/infras/otel"
	"propbook/internal/domains/validation/model/dto"
	"propbook/internal/domains/validation/rule"
	"propbook/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	FieldPhone = "phone"
	FieldCity  = "city"
	FieldDate  = "date"
	FieldName  = "name"

	otelAttributeValid = "validation.valid"
)

type Validation interface {
	Phone(ctx context.Context, req dto.ValidatePhoneRequest) dto.ValidityResponse
	City(ctx context.Context, req dto.ValidateCityRequest) dto.ValidityResponse
	Date(ctx context.Context, req dto.ValidateDateRequest) dto.ValidityResponse
	Name(ctx context.Context, req dto.ValidateNameRequest) dto.NameValidityResponse
}

type serviceImpl struct {
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(metrics *metrics.Metrics, otel otel.Otel) Validation {
	return &serviceImpl{
		metrics: metrics,
		otel:    otel,
	}
}

func (s *serviceImpl) Phone(ctx context.Context, req dto.ValidatePhoneRequest) dto.ValidityResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidatePhone")
	defer scope.End()

	valid := rule.ValidatePhone(req.PhoneNumber)
	s.observe(scope, FieldPhone, valid)

	return dto.ValidityResponse{IsValid: valid}
}

func (s *serviceImpl) City(ctx context.Context, req dto.ValidateCityRequest) dto.ValidityResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateCity")
	defer scope.End()

	valid := rule.ValidateCity(req.City)
	scope.SetAttribute("validation.city", rule.NormalizeCity(req.City))
	s.observe(scope, FieldCity, valid)

	return dto.ValidityResponse{IsValid: valid}
}

func (s *serviceImpl) Date(ctx context.Context, req dto.ValidateDateRequest) dto.ValidityResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateDate")
	defer scope.End()

	valid := rule.ValidateDate(req.Date)
	s.observe(scope, FieldDate, valid)

	return dto.ValidityResponse{IsValid: valid}
}

func (s *serviceImpl) Name(ctx context.Context, req dto.ValidateNameRequest) dto.NameValidityResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateName")
	defer scope.End()

	valid, name := rule.ValidateName(req.Name)
	s.observe(scope, FieldName, valid)

	return dto.NameValidityResponse{IsValid: valid, Name: name}
}

func (s *serviceImpl) observe(scope otel.Scope, field string, valid bool) {
	scope.SetAttribute(otelAttributeValid, valid)
	s.metrics.ObserveValidation(field, valid)

	log.Debug().Str("field", field).Bool("valid", valid).Msg("field validated")
}
