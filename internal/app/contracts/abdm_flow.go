package contracts

import (
	"abdm-link-service/internal/pkg/dto/responses"
	"context"
)

// AbdmFlowClient performs one POST per link step against the health
// information exchange. Bodies are generic JSON objects.
type AbdmFlowClient interface {
	CreateCareContext(ctx context.Context, body map[string]interface{}) (*responses.CareContextResult, error)
	UpdateVisitRecords(ctx context.Context, body map[string]interface{}) (bool, error)
	LinkCareContext(ctx context.Context, body map[string]interface{}) (bool, error)
}
