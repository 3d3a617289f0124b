package abdmFlows

import (
	"abdm-link-service/internal/app/contracts"
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/dto/responses"
	"abdm-link-service/internal/pkg/exceptions"
	"abdm-link-service/internal/pkg/utils"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// errorMessagePaths are tried in order against a non-success response body.
var errorMessagePaths = []string{"message", "error.message", "errorMessage", "error", "details.0.message"}

type abdmFlowClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewAbdmFlowClient builds the client for the three link steps. A nil
// limiter disables outbound throttling.
func NewAbdmFlowClient(baseUrl string, httpClient *http.Client, limiter *rate.Limiter, logger *zap.Logger) contracts.AbdmFlowClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &abdmFlowClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: httpClient,
		Limiter:    limiter,
		Log:        logger,
	}
}

func (c *abdmFlowClient) CreateCareContext(ctx context.Context, body map[string]interface{}) (*responses.CareContextResult, error) {
	result, err := post[responses.CareContextResult](ctx, c, constvars.AbdmStepCreateCareContext, constvars.AbdmPathCreateCareContext, body)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.CareContextReference) == "" {
		err := errors.New("careContextReference missing from response")
		c.Log.Error("abdmFlowClient.CreateCareContext malformed response",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.AbdmStepCreateCareContext)
	}
	return &result, nil
}

func (c *abdmFlowClient) UpdateVisitRecords(ctx context.Context, body map[string]interface{}) (bool, error) {
	return c.postBool(ctx, constvars.AbdmStepUpdateVisitRecords, constvars.AbdmPathUpdateVisitRecords, body)
}

func (c *abdmFlowClient) LinkCareContext(ctx context.Context, body map[string]interface{}) (bool, error) {
	return c.postBool(ctx, constvars.AbdmStepLinkCareContext, constvars.AbdmPathLinkCareContext, body)
}

// postBool requires the exchange to answer with a JSON boolean; a null body
// is a malformed response, not a false.
func (c *abdmFlowClient) postBool(ctx context.Context, step, path string, body map[string]interface{}) (bool, error) {
	result, err := post[*bool](ctx, c, step, path, body)
	if err != nil {
		return false, err
	}
	if result == nil {
		err := errors.New("boolean result missing from response")
		c.Log.Error("abdmFlowClient.postBool malformed response",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingAbdmStepKey, step),
			zap.Error(err),
		)
		return false, exceptions.ErrDecodeResponse(err, step)
	}
	return *result, nil
}

// post sends body to path and decodes a 2xx response into T. The call is
// issued once; retrying is left to the caller.
func post[T any](ctx context.Context, c *abdmFlowClient, step, path string, body map[string]interface{}) (T, error) {
	var result T
	requestID := utils.RequestIDFromContext(ctx)
	url := c.BaseUrl + path
	c.Log.Info("abdmFlowClient.post called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAbdmStepKey, step),
		zap.String(constvars.LoggingAbdmURLKey, url),
	)

	if c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			c.Log.Error("abdmFlowClient.post error waiting for rate limiter",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAbdmStepKey, step),
				zap.Error(err),
			)
			if ctx.Err() != nil {
				return result, exceptions.ErrFromContext(ctx.Err())
			}
			return result, exceptions.ErrRateLimitWait(err)
		}
	}

	requestJSON, err := json.Marshal(body)
	if err != nil {
		c.Log.Error("abdmFlowClient.post error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAbdmStepKey, step),
			zap.Error(err),
		)
		return result, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("abdmFlowClient.post error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAbdmStepKey, step),
			zap.Error(err),
		)
		return result, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("abdmFlowClient.post error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAbdmStepKey, step),
			zap.Error(err),
		)
		if ctx.Err() != nil {
			return result, exceptions.ErrFromContext(ctx.Err())
		}
		return result, exceptions.ErrSendHTTPRequest(err, step)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("abdmFlowClient.post error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAbdmStepKey, step),
			zap.Error(err),
		)
		return result, exceptions.ErrDecodeResponse(err, step)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		message := extractErrorMessage(bodyBytes, resp.StatusCode)
		c.Log.Error("abdmFlowClient.post non-success status from exchange",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAbdmStepKey, step),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("message", message),
		)
		return result, exceptions.ErrRemoteAPI(errors.New(message), step, resp.StatusCode, message)
	}

	err = json.Unmarshal(bodyBytes, &result)
	if err != nil {
		c.Log.Error("abdmFlowClient.post error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAbdmStepKey, step),
			zap.Error(err),
		)
		return result, exceptions.ErrDecodeResponse(err, step)
	}

	c.Log.Info("abdmFlowClient.post succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAbdmStepKey, step),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return result, nil
}

func extractErrorMessage(body []byte, statusCode int) string {
	if gjson.ValidBytes(body) {
		for _, path := range errorMessagePaths {
			value := gjson.GetBytes(body, path)
			if value.Exists() && value.Type == gjson.String && strings.TrimSpace(value.String()) != "" {
				return value.String()
			}
		}
	}

	trimmed := strings.TrimSpace(string(body))
	if trimmed != "" {
		return trimmed
	}
	return http.StatusText(statusCode)
}
