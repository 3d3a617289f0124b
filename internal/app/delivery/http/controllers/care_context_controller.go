package controllers

import (
	"abdm-link-service/internal/app/config"
	"abdm-link-service/internal/app/contracts"
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/dto/requests"
	"abdm-link-service/internal/pkg/exceptions"
	"abdm-link-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultSagaTimeout = 60 * time.Second

type CareContextController struct {
	Log                *zap.Logger
	CareContextUsecase contracts.CareContextUsecase
	InternalConfig     *config.InternalConfig
}

var (
	careContextControllerInstance *CareContextController
	onceCareContextController     sync.Once
)

func NewCareContextController(logger *zap.Logger, careContextUsecase contracts.CareContextUsecase, internalConfig *config.InternalConfig) *CareContextController {
	onceCareContextController.Do(func() {
		instance := &CareContextController{
			Log:                logger,
			CareContextUsecase: careContextUsecase,
			InternalConfig:     internalConfig,
		}
		careContextControllerInstance = instance
	})
	return careContextControllerInstance
}

func (ctrl *CareContextController) LinkCareContext(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CareContextController.LinkCareContext requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("CareContextController.LinkCareContext called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.LinkCareContextRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if errors.Is(err, io.EOF) {
		ctrl.Log.Error("CareContextController.LinkCareContext empty request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrValidationMessage(constvars.ErrClientRequestIsRequired))
		return
	}
	if err != nil {
		ctrl.Log.Error("CareContextController.LinkCareContext error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.sagaTimeout())
	defer cancel()

	response, err := ctrl.CareContextUsecase.LinkCareContext(ctx, request)
	if err != nil {
		ctrl.Log.Error("CareContextController.LinkCareContext error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.CareContextLinkedSuccessMessage
	if !response.Linked {
		message = constvars.CareContextNotLinkedSuccessMessage
	}

	ctrl.Log.Info("CareContextController.LinkCareContext succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, response.TransactionID),
		zap.Bool(constvars.LoggingLinkedKey, response.Linked),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func (ctrl *CareContextController) FindLinkTransactionByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("CareContextController.FindLinkTransactionByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	transactionID := strings.TrimSpace(chi.URLParam(r, constvars.URLParamTransactionID))
	ctrl.Log.Info("CareContextController.FindLinkTransactionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
	)

	if !utils.IsHyphenatedUUID(transactionID) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrLinkTransactionNotFound(nil, transactionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CareContextUsecase.FindLinkTransactionByID(ctx, transactionID)
	if err != nil {
		ctrl.Log.Error("CareContextController.FindLinkTransactionByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LinkTransactionFoundSuccessMessage, response)
}

func (ctrl *CareContextController) sagaTimeout() time.Duration {
	if ctrl.InternalConfig == nil || ctrl.InternalConfig.App.SagaTimeoutInSeconds <= 0 {
		return defaultSagaTimeout
	}
	return time.Duration(ctrl.InternalConfig.App.SagaTimeoutInSeconds) * time.Second
}
