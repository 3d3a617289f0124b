package contracts

import (
	"abdm-link-service/internal/app/models"
	"abdm-link-service/internal/pkg/dto/requests"
	"abdm-link-service/internal/pkg/dto/responses"
	"context"
)

type CareContextUsecase interface {
	LinkCareContext(ctx context.Context, request *requests.LinkCareContextRequest) (*responses.CareContextLink, error)
	FindLinkTransactionByID(ctx context.Context, transactionID string) (*responses.LinkTransaction, error)
}

type LinkTransactionRepository interface {
	InsertLinkTransaction(ctx context.Context, transaction *models.LinkTransaction) error
	FindLinkTransactionByID(ctx context.Context, transactionID string) (*models.LinkTransaction, error)
}

type ReconciliationPublisher interface {
	PublishFailedLink(ctx context.Context, event *models.ReconciliationEvent) error
}
