package contracts

import (
	"context"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/dto/requests"
	"mindcare-service/internal/pkg/dto/responses"
)

type TherapistUsecase interface {
	RegisterTherapist(ctx context.Context, request *requests.RegisterTherapist) (*responses.RegisterTherapist, error)
	GetTherapistProfile(ctx context.Context, userID string) (*responses.TherapistProfile, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
}
