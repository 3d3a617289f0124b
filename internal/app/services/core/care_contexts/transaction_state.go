package careContexts

import (
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/dto/requests"
	"abdm-link-service/internal/pkg/dto/responses"
	"abdm-link-service/internal/pkg/utils"
	"fmt"
	"strings"
)

// SagaStage names the furthest point a link transaction has reached.
type SagaStage string

const (
	StageStart               SagaStage = "START"
	StageValidated           SagaStage = "VALIDATED"
	StageCareContextCreated  SagaStage = "CARE_CONTEXT_CREATED"
	StageSkipped             SagaStage = "SKIPPED"
	StageVisitRecordsUpdated SagaStage = "VISIT_RECORDS_UPDATED"
	StageHaltedAfterUpdate   SagaStage = "HALTED_AFTER_UPDATE"
	StageCareContextLinked   SagaStage = "CARE_CONTEXT_LINKED"
)

// TransactionState is an immutable snapshot of one link transaction. Every
// completed step produces the next snapshot; a snapshot is never modified in
// place, so it is safe to hand to loggers and errors at any point.
type TransactionState struct {
	request              *requests.LinkCareContextRequest
	stage                SagaStage
	careContextReference string
	appointmentReference string
	requestID            string
	careContextCreated   bool
	visitRecordsUpdated  bool
	careContextLinked    bool
}

func NewTransactionState(request *requests.LinkCareContextRequest) TransactionState {
	return TransactionState{
		request: request,
		stage:   StageStart,
	}
}

func (s TransactionState) validated(appointmentReference string) TransactionState {
	s.stage = StageValidated
	s.appointmentReference = appointmentReference
	return s
}

func (s TransactionState) careContextCreatedWith(result *responses.CareContextResult) TransactionState {
	s.stage = StageCareContextCreated
	s.careContextReference = result.CareContextReference
	s.requestID = result.RequestID
	s.careContextCreated = true
	return s
}

func (s TransactionState) skipped() TransactionState {
	s.stage = StageSkipped
	return s
}

func (s TransactionState) visitRecordsUpdatedNow() TransactionState {
	s.stage = StageVisitRecordsUpdated
	s.visitRecordsUpdated = true
	return s
}

func (s TransactionState) haltedAfterUpdate() TransactionState {
	s.stage = StageHaltedAfterUpdate
	return s
}

func (s TransactionState) careContextLinkedNow() TransactionState {
	s.stage = StageCareContextLinked
	s.careContextLinked = true
	return s
}

func (s TransactionState) Request() *requests.LinkCareContextRequest { return s.request }
func (s TransactionState) Stage() SagaStage                          { return s.stage }
func (s TransactionState) CareContextReference() string              { return s.careContextReference }
func (s TransactionState) AppointmentReference() string              { return s.appointmentReference }
func (s TransactionState) RequestID() string                         { return s.requestID }
func (s TransactionState) CareContextCreated() bool                  { return s.careContextCreated }
func (s TransactionState) VisitRecordsUpdated() bool                 { return s.visitRecordsUpdated }
func (s TransactionState) CareContextLinked() bool                   { return s.careContextLinked }

// String renders the state with every identifier redacted.
func (s TransactionState) String() string {
	return fmt.Sprintf(
		"TransactionState{linkRequest=%s, stage=%s, careContextReference=%s, appointmentReference=%s, requestId=%s, careContextCreated=%t, visitRecordsUpdated=%t, careContextLinked=%t}",
		redactLinkRequest(s.request),
		s.stage,
		utils.MaskIdentifier(s.careContextReference),
		utils.MaskIdentifier(s.appointmentReference),
		utils.MaskIdentifier(s.requestID),
		s.careContextCreated,
		s.visitRecordsUpdated,
		s.careContextLinked,
	)
}

func redactLinkRequest(request *requests.LinkCareContextRequest) string {
	if request == nil {
		return constvars.RedactionNullValue
	}

	fields := []string{
		"patientReference=" + utils.MaskIdentifier(request.PatientReference),
		"practitionerReference=" + utils.MaskIdentifier(request.PractitionerReference),
		"appointmentReference=" + utils.MaskIdentifier(request.AppointmentReference),
		"appointmentStartDate=" + request.AppointmentStartDate,
		"appointmentEndDate=" + request.AppointmentEndDate,
		"appointmentPriority=" + optionalString(request.AppointmentPriority),
		"organizationId=" + utils.MaskIdentifier(request.OrganizationID),
		"mobileNumber=" + utils.MaskIdentifier(request.MobileNumber),
		"abhaAddress=" + utils.MaskIdentifier(request.AbhaAddress),
		"patientName=" + utils.MaskIdentifier(request.PatientName),
		"hiType=" + request.HiType,
		fmt.Sprintf("healthRecords=%d", len(request.HealthRecords)),
	}
	return "LinkRequest{" + strings.Join(fields, ", ") + "}"
}

func optionalString(value *string) string {
	if value == nil {
		return constvars.RedactionNullValue
	}
	return *value
}
