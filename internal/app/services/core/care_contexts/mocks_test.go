package careContexts

import (
	"abdm-link-service/internal/app/models"
	"abdm-link-service/internal/pkg/dto/responses"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockAbdmFlowClient struct {
	mock.Mock
}

func (m *mockAbdmFlowClient) CreateCareContext(ctx context.Context, body map[string]interface{}) (*responses.CareContextResult, error) {
	args := m.Called(ctx, body)
	result, _ := args.Get(0).(*responses.CareContextResult)
	return result, args.Error(1)
}

func (m *mockAbdmFlowClient) UpdateVisitRecords(ctx context.Context, body map[string]interface{}) (bool, error) {
	args := m.Called(ctx, body)
	return args.Bool(0), args.Error(1)
}

func (m *mockAbdmFlowClient) LinkCareContext(ctx context.Context, body map[string]interface{}) (bool, error) {
	args := m.Called(ctx, body)
	return args.Bool(0), args.Error(1)
}

type mockLinkTransactionRepository struct {
	mock.Mock
}

func (m *mockLinkTransactionRepository) InsertLinkTransaction(ctx context.Context, transaction *models.LinkTransaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *mockLinkTransactionRepository) FindLinkTransactionByID(ctx context.Context, transactionID string) (*models.LinkTransaction, error) {
	args := m.Called(ctx, transactionID)
	transaction, _ := args.Get(0).(*models.LinkTransaction)
	return transaction, args.Error(1)
}

type mockReconciliationPublisher struct {
	mock.Mock
}

func (m *mockReconciliationPublisher) PublishFailedLink(ctx context.Context, event *models.ReconciliationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockLocker struct {
	mock.Mock
}

func (m *mockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}
