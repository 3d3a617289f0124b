package careContexts

import (
	"abdm-link-service/internal/app/config"
	"abdm-link-service/internal/app/contracts"
	"abdm-link-service/internal/app/models"
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/dto/requests"
	"abdm-link-service/internal/pkg/dto/responses"
	"abdm-link-service/internal/pkg/exceptions"
	"abdm-link-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type careContextUsecase struct {
	AbdmFlowClient          contracts.AbdmFlowClient
	LinkTransactionRepo     contracts.LinkTransactionRepository
	ReconciliationPublisher contracts.ReconciliationPublisher
	Locker                  contracts.LockerService
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

const defaultLockExpiration = 2 * time.Minute

// sagaRun is the terminal outcome of one link transaction.
type sagaRun struct {
	state      TransactionState
	linked     bool
	reason     string
	failedStep string
	err        error
}

// NewCareContextUsecase wires the link transaction. The ledger repository,
// reconciliation publisher and locker are optional and may be nil.
func NewCareContextUsecase(
	abdmFlowClient contracts.AbdmFlowClient,
	linkTransactionRepo contracts.LinkTransactionRepository,
	reconciliationPublisher contracts.ReconciliationPublisher,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CareContextUsecase {
	return &careContextUsecase{
		AbdmFlowClient:          abdmFlowClient,
		LinkTransactionRepo:     linkTransactionRepo,
		ReconciliationPublisher: reconciliationPublisher,
		Locker:                  locker,
		InternalConfig:          internalConfig,
		Log:                     logger,
	}
}

// LinkCareContext creates a care context, attaches the visit records and
// links the context to the patient, in that order and at most once each.
// Steps already completed on the exchange are not rolled back on failure;
// the returned error carries the redacted transaction state instead.
func (uc *careContextUsecase) LinkCareContext(ctx context.Context, request *requests.LinkCareContextRequest) (*responses.CareContextLink, error) {
	requestID := utils.RequestIDFromContext(ctx)
	transactionID := utils.GenerateTransactionID()
	uc.Log.Info("careContextUsecase.LinkCareContext called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
	)

	state := NewTransactionState(request)
	err := utils.ValidateSagaRequest(request)
	if err != nil {
		uc.Log.Error("careContextUsecase.LinkCareContext error validating link request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Error(err),
		)
		return nil, err
	}

	appointmentReference := request.AppointmentReference
	if strings.TrimSpace(appointmentReference) == "" {
		appointmentReference = utils.GenerateAppointmentReference()
		uc.Log.Debug("careContextUsecase.LinkCareContext generated appointment reference",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentRefKey, utils.MaskIdentifier(appointmentReference)),
		)
	}
	state = state.validated(appointmentReference)

	release, err := uc.acquireLock(ctx, request.PatientReference, appointmentReference)
	if err != nil {
		uc.Log.Error("careContextUsecase.LinkCareContext error acquiring appointment lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Error(err),
		)
		return nil, err
	}
	defer release()

	startedAt := time.Now()
	run := uc.run(ctx, request, state)
	uc.recordOutcome(ctx, transactionID, requestID, run, startedAt)

	if run.err != nil {
		uc.Log.Error("careContextUsecase.LinkCareContext failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.String(constvars.LoggingAbdmStepKey, run.failedStep),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(run.err))),
			zap.Stringer(constvars.LoggingTransactionStateKey, run.state),
			zap.Error(run.err),
		)
		return nil, run.err
	}

	uc.Log.Info("careContextUsecase.LinkCareContext succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
		zap.Bool(constvars.LoggingLinkedKey, run.linked),
		zap.String(constvars.LoggingLinkReasonKey, run.reason),
	)
	return &responses.CareContextLink{
		TransactionID:    transactionID,
		Linked:           run.linked,
		Reason:           run.reason,
		TransactionState: run.state.String(),
	}, nil
}

func (uc *careContextUsecase) FindLinkTransactionByID(ctx context.Context, transactionID string) (*responses.LinkTransaction, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("careContextUsecase.FindLinkTransactionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
	)

	if uc.LinkTransactionRepo == nil {
		return nil, exceptions.ErrLinkTransactionNotFound(nil, transactionID)
	}

	transaction, err := uc.LinkTransactionRepo.FindLinkTransactionByID(ctx, transactionID)
	if err != nil {
		uc.Log.Error("careContextUsecase.FindLinkTransactionByID error calling repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.LinkTransaction{
		TransactionID:       transaction.TransactionID,
		PatientReference:    transaction.PatientReference,
		AppointmentRef:      transaction.AppointmentRef,
		CareContextRef:      transaction.CareContextRef,
		CareContextCreated:  transaction.CareContextCreated,
		VisitRecordsUpdated: transaction.VisitRecordsUpdated,
		CareContextLinked:   transaction.CareContextLinked,
		Stage:               transaction.Stage,
		Reason:              transaction.Reason,
		FailedStep:          transaction.FailedStep,
		ErrorKind:           transaction.ErrorKind,
		ErrorMessage:        transaction.ErrorMessage,
		TransactionState:    transaction.TransactionState,
		StartedAt:           transaction.StartedAt,
		FinishedAt:          transaction.FinishedAt,
	}, nil
}

func (uc *careContextUsecase) run(ctx context.Context, request *requests.LinkCareContextRequest, state TransactionState) sagaRun {
	requestID := utils.RequestIDFromContext(ctx)

	state, err := uc.createCareContext(ctx, request, state)
	if err != nil {
		return failedRun(constvars.AbdmStepCreateCareContext, state, err)
	}

	if len(request.HealthRecords) == 0 {
		uc.Log.Info("careContextUsecase.run no health records, care context left unlinked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCareContextRefKey, utils.MaskIdentifier(state.CareContextReference())),
		)
		return sagaRun{state: state.skipped(), reason: constvars.LinkReasonNoHealthRecords}
	}

	state, updated, err := uc.updateVisitRecords(ctx, request, state)
	if err != nil {
		return failedRun(constvars.AbdmStepUpdateVisitRecords, state, err)
	}
	if !updated {
		uc.Log.Info("careContextUsecase.run visit records not updated, link step skipped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCareContextRefKey, utils.MaskIdentifier(state.CareContextReference())),
		)
		return sagaRun{state: state.skipped(), reason: constvars.LinkReasonVisitRecordsNotUpdated}
	}

	state, linked, err := uc.linkCareContext(ctx, request, state)
	if err != nil {
		return failedRun(constvars.AbdmStepLinkCareContext, state, err)
	}
	if !linked {
		uc.Log.Warn("careContextUsecase.run exchange did not confirm the link",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCareContextRefKey, utils.MaskIdentifier(state.CareContextReference())),
		)
		return sagaRun{state: state.haltedAfterUpdate(), reason: constvars.LinkReasonLinkNotConfirmed}
	}

	return sagaRun{state: state, linked: true, reason: constvars.LinkReasonLinked}
}

func (uc *careContextUsecase) createCareContext(ctx context.Context, request *requests.LinkCareContextRequest, state TransactionState) (TransactionState, error) {
	if err := ctx.Err(); err != nil {
		return state, err
	}

	careContextRequest := utils.BuildCareContextRequest(request, state.AppointmentReference(), request.AppointmentStartDate, request.AppointmentEndDate)
	err := utils.ValidateSagaRequest(careContextRequest)
	if err != nil {
		return state, err
	}

	body, err := utils.StructToMap(careContextRequest)
	if err != nil {
		return state, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := uc.AbdmFlowClient.CreateCareContext(ctx, body)
	if err != nil {
		return state, err
	}
	if result == nil {
		return state, errors.New("create care context returned no result")
	}
	return state.careContextCreatedWith(result), nil
}

func (uc *careContextUsecase) updateVisitRecords(ctx context.Context, request *requests.LinkCareContextRequest, state TransactionState) (TransactionState, bool, error) {
	if err := ctx.Err(); err != nil {
		return state, false, err
	}

	updateRequest := utils.BuildVisitRecordsUpdateRequest(request, state.AppointmentReference(), state.CareContextReference(), state.RequestID())
	err := utils.ValidateSagaRequest(updateRequest)
	if err != nil {
		return state, false, err
	}

	body, err := utils.StructToMap(updateRequest)
	if err != nil {
		return state, false, exceptions.ErrCannotMarshalJSON(err)
	}

	updated, err := uc.AbdmFlowClient.UpdateVisitRecords(ctx, body)
	if err != nil {
		return state, false, err
	}
	if !updated {
		return state, false, nil
	}
	return state.visitRecordsUpdatedNow(), true, nil
}

func (uc *careContextUsecase) linkCareContext(ctx context.Context, request *requests.LinkCareContextRequest, state TransactionState) (TransactionState, bool, error) {
	if err := ctx.Err(); err != nil {
		return state, false, err
	}

	linkRequest := utils.BuildLinkCareContextFinalRequest(request, state.CareContextReference(), state.AppointmentReference(), state.RequestID())
	err := utils.ValidateSagaRequest(linkRequest)
	if err != nil {
		return state, false, err
	}

	body, err := utils.StructToMap(linkRequest)
	if err != nil {
		return state, false, exceptions.ErrCannotMarshalJSON(err)
	}

	linked, err := uc.AbdmFlowClient.LinkCareContext(ctx, body)
	if err != nil {
		return state, false, err
	}
	if !linked {
		return state, false, nil
	}
	return state.careContextLinkedNow(), true, nil
}

func failedRun(step string, state TransactionState, err error) sagaRun {
	return sagaRun{
		state:      state,
		reason:     constvars.LinkReasonFailed,
		failedStep: step,
		err:        classifyStepError(err, state),
	}
}

// classifyStepError maps a step failure onto the three error kinds. Remote
// and internal errors carry the redacted state; validation errors are
// prefixed so they read as transaction failures.
func classifyStepError(err error, state TransactionState) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		switch customErr.Kind {
		case exceptions.KindValidation:
			return exceptions.ErrTransactionValidation(customErr)
		case exceptions.KindRemoteAPI:
			return customErr.WithTransactionState(state.String())
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err).WithTransactionState(state.String())
	}
	return exceptions.ErrServerProcess(err).WithTransactionState(state.String())
}

func (uc *careContextUsecase) acquireLock(ctx context.Context, patientReference, appointmentReference string) (func(), error) {
	if uc.Locker == nil {
		return func() {}, nil
	}

	key := fmt.Sprintf(constvars.RedisKeyCareContextLockFormat, patientReference, appointmentReference)
	expiration := defaultLockExpiration
	if uc.InternalConfig != nil && uc.InternalConfig.Saga.LockExpirationInSeconds > 0 {
		expiration = time.Duration(uc.InternalConfig.Saga.LockExpirationInSeconds) * time.Second
	}
	acquired, lockValue, err := uc.Locker.TryLock(ctx, key, expiration)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	if !acquired {
		return nil, exceptions.ErrCareContextLinkInProgress(nil)
	}

	return func() {
		err := uc.Locker.Unlock(context.WithoutCancel(ctx), key, lockValue)
		if err != nil {
			uc.Log.Error("careContextUsecase.acquireLock error releasing appointment lock",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
				zap.Error(err),
			)
		}
	}, nil
}

// recordOutcome writes the ledger entry and, for failures that left a care
// context behind on the exchange, publishes a reconciliation event. Neither
// affects the result returned to the caller.
func (uc *careContextUsecase) recordOutcome(ctx context.Context, transactionID, requestID string, run sagaRun, startedAt time.Time) {
	ctx = context.WithoutCancel(ctx)
	finishedAt := time.Now()

	transaction := &models.LinkTransaction{
		TransactionID:       transactionID,
		RequestID:           requestID,
		PatientReference:    utils.MaskIdentifier(run.state.Request().PatientReference),
		AppointmentRef:      utils.MaskIdentifier(run.state.AppointmentReference()),
		CareContextRef:      utils.MaskIdentifier(run.state.CareContextReference()),
		CareContextCreated:  run.state.CareContextCreated(),
		VisitRecordsUpdated: run.state.VisitRecordsUpdated(),
		CareContextLinked:   run.state.CareContextLinked(),
		Stage:               string(run.state.Stage()),
		Reason:              run.reason,
		FailedStep:          run.failedStep,
		TransactionState:    run.state.String(),
		StartedAt:           startedAt,
		FinishedAt:          &finishedAt,
	}
	if run.err != nil {
		transaction.ErrorKind = string(exceptions.KindOf(run.err))
		transaction.ErrorMessage = exceptions.ClientMessageOf(run.err)
	}

	if uc.LinkTransactionRepo != nil {
		err := uc.LinkTransactionRepo.InsertLinkTransaction(ctx, transaction)
		if err != nil {
			uc.Log.Error("careContextUsecase.recordOutcome error inserting link transaction",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTransactionIDKey, transactionID),
				zap.Error(err),
			)
		}
	}

	if run.err != nil && run.state.CareContextCreated() && uc.ReconciliationPublisher != nil {
		event := &models.ReconciliationEvent{
			Event:            constvars.ReconciliationEventSagaFailed,
			TransactionID:    transactionID,
			RequestID:        requestID,
			FailedStep:       run.failedStep,
			ErrorKind:        transaction.ErrorKind,
			ErrorMessage:     transaction.ErrorMessage,
			TransactionState: transaction.TransactionState,
			OccurredAt:       finishedAt,
		}
		err := uc.ReconciliationPublisher.PublishFailedLink(ctx, event)
		if err != nil {
			uc.Log.Error("careContextUsecase.recordOutcome error publishing reconciliation event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTransactionIDKey, transactionID),
				zap.Error(err),
			)
		}
	}

	utils.LogBusinessEvent(uc.Log, "care_context_link_finished", requestID,
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
		zap.String(constvars.LoggingLinkReasonKey, run.reason),
		zap.Bool(constvars.LoggingLinkedKey, run.linked),
		zap.Int(constvars.LoggingHealthRecordCountKey, len(run.state.Request().HealthRecords)),
		zap.Duration(constvars.LoggingDurationKey, finishedAt.Sub(startedAt)),
	)
}
