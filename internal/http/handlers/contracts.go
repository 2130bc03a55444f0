package handlers

import (
	"context"

	"bloodlink/internal/domain"
	"bloodlink/internal/service/alerting"
	donorsvc "bloodlink/internal/service/donor"
	hospitalsvc "bloodlink/internal/service/hospital"
	"bloodlink/internal/service/matching"
	recipientsvc "bloodlink/internal/service/recipient"
)

type donorUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Donor, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Donor, error)
	Register(ctx context.Context, d *domain.Donor) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialDonorUpdate) (bool, error)
}

// NewDonorUsecase wires a donor Service into a donorUsecase.
func NewDonorUsecase(service *donorsvc.Service) donorUsecase {
	return service
}

type recipientUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Recipient, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Recipient, error)
	Register(ctx context.Context, r *domain.Recipient) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RecipientStatus) error
}

// NewRecipientUsecase wires a recipient Service into a recipientUsecase.
func NewRecipientUsecase(service *recipientsvc.Service) recipientUsecase {
	return service
}

type matchUsecase interface {
	FindMatches(ctx context.Context, recipientID int64) ([]domain.Match, error)
}

// NewMatchUsecase wires a matching Service into a matchUsecase.
func NewMatchUsecase(service *matching.Service) matchUsecase {
	return service
}

type alertUsecase interface {
	Send(ctx context.Context, spec domain.AlertSpec) (*domain.Alert, domain.DeliveryReport, error)
	List(ctx context.Context) ([]domain.Alert, error)
	Deactivate(ctx context.Context, id string) error
}

// NewAlertUsecase wires an alerting Service into an alertUsecase.
func NewAlertUsecase(service *alerting.Service) alertUsecase {
	return service
}

type hospitalUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Hospital, error)
	List(ctx context.Context) ([]domain.Hospital, error)
}

// NewHospitalUsecase wires a hospital Service into a hospitalUsecase.
func NewHospitalUsecase(service *hospitalsvc.Service) hospitalUsecase {
	return service
}
