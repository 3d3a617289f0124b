package abdmFlows

import (
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *abdmFlowClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewAbdmFlowClient(server.URL+"/", server.Client(), rate.NewLimiter(rate.Inf, 1), zap.NewNop())
	return client.(*abdmFlowClient)
}

func requestContext() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-123")
}

func TestCreateCareContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, constvars.AbdmPathCreateCareContext, r.URL.Path)
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))
		assert.Equal(t, "req-123", r.Header.Get(constvars.HeaderXRequestID))

		body := make(map[string]interface{})
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pat-1", body["patientReference"])
		assert.Equal(t, false, body["resendOtp"])

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		io.WriteString(w, `{"careContextReference":"cc-1","requestId":"abdm-1"}`)
	})

	result, err := client.CreateCareContext(requestContext(), map[string]interface{}{
		"patientReference": "pat-1",
		"resendOtp":        false,
	})

	require.NoError(t, err)
	assert.Equal(t, "cc-1", result.CareContextReference)
	assert.Equal(t, "abdm-1", result.RequestID)
}

func TestCreateCareContextMissingReference(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"requestId":"abdm-1"}`)
	})

	result, err := client.CreateCareContext(requestContext(), map[string]interface{}{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, exceptions.KindRemoteAPI, exceptions.KindOf(err))
}

func TestBooleanSteps(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		response string
		expected bool
		call     func(c *abdmFlowClient) (bool, error)
	}{
		{
			name:     "update visit records true",
			path:     constvars.AbdmPathUpdateVisitRecords,
			response: "true",
			expected: true,
			call: func(c *abdmFlowClient) (bool, error) {
				return c.UpdateVisitRecords(requestContext(), map[string]interface{}{})
			},
		},
		{
			name:     "update visit records false",
			path:     constvars.AbdmPathUpdateVisitRecords,
			response: "false",
			expected: false,
			call: func(c *abdmFlowClient) (bool, error) {
				return c.UpdateVisitRecords(requestContext(), map[string]interface{}{})
			},
		},
		{
			name:     "link care context true",
			path:     constvars.AbdmPathLinkCareContext,
			response: "true",
			expected: true,
			call: func(c *abdmFlowClient) (bool, error) {
				return c.LinkCareContext(requestContext(), map[string]interface{}{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				io.WriteString(w, tt.response)
			})

			result, err := tt.call(client)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNonSuccessStatus(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
	}{
		{name: "top level message", status: http.StatusUnprocessableEntity, body: `{"message":"invalid bundle"}`, expectedMessage: "invalid bundle"},
		{name: "nested error message", status: http.StatusBadRequest, body: `{"error":{"code":"ABDM-1017","message":"patient not found"}}`, expectedMessage: "patient not found"},
		{name: "details array", status: http.StatusBadRequest, body: `{"details":[{"message":"hiType unsupported"}]}`, expectedMessage: "hiType unsupported"},
		{name: "plain text body", status: http.StatusBadGateway, body: "upstream timeout", expectedMessage: "upstream timeout"},
		{name: "empty body", status: http.StatusServiceUnavailable, body: "", expectedMessage: http.StatusText(http.StatusServiceUnavailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			updated, err := client.UpdateVisitRecords(requestContext(), map[string]interface{}{})

			require.Error(t, err)
			assert.False(t, updated)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, exceptions.KindRemoteAPI, customErr.Kind)
			assert.Equal(t, tt.status, customErr.StatusCode)
			assert.Contains(t, customErr.ClientMessage, constvars.AbdmStepUpdateVisitRecords)
			assert.Contains(t, customErr.ClientMessage, tt.expectedMessage)
		})
	}
}

func TestMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"linked":`)
	})

	_, err := client.LinkCareContext(requestContext(), map[string]interface{}{})

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, exceptions.KindRemoteAPI, customErr.Kind)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}

func TestBooleanStepsRejectNullBody(t *testing.T) {
	tests := []struct {
		name string
		call func(c *abdmFlowClient) (bool, error)
	}{
		{
			name: "update visit records",
			call: func(c *abdmFlowClient) (bool, error) {
				return c.UpdateVisitRecords(requestContext(), map[string]interface{}{})
			},
		},
		{
			name: "link care context",
			call: func(c *abdmFlowClient) (bool, error) {
				return c.LinkCareContext(requestContext(), map[string]interface{}{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
				io.WriteString(w, `null`)
			})

			ok, err := tt.call(client)

			require.Error(t, err)
			assert.False(t, ok)
			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, exceptions.KindRemoteAPI, customErr.Kind)
			assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseUrl := server.URL
	server.Close()

	client := NewAbdmFlowClient(baseUrl, &http.Client{Timeout: time.Second}, nil, zap.NewNop())
	_, err := client.LinkCareContext(requestContext(), map[string]interface{}{})

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, exceptions.KindRemoteAPI, customErr.Kind)
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}

func TestCanceledContext(t *testing.T) {
	released := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-released:
		}
	})
	defer close(released)

	ctx, cancel := context.WithTimeout(requestContext(), 50*time.Millisecond)
	defer cancel()

	_, err := client.UpdateVisitRecords(ctx, map[string]interface{}{})

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, exceptions.KindInternal, customErr.Kind)
	assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
}

func TestExtractErrorMessage(t *testing.T) {
	assert.Equal(t, "first", extractErrorMessage([]byte(`{"message":"first","error":"second"}`), 400))
	assert.Equal(t, "second", extractErrorMessage([]byte(`{"message":"","error":"second"}`), 400))
	assert.Equal(t, `{"code":7}`, extractErrorMessage([]byte(`{"code":7}`), 400))
	assert.Equal(t, "Not Found", extractErrorMessage(nil, 404))
}
