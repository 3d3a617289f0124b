package requests

// SagaRequest is implemented by exactly the four request shapes the care
// context link transaction validates. The unexported marker keeps the set
// closed to this package.
type SagaRequest interface {
	sagaRequest()
}

type HealthRecord struct {
	BundleType    string                 `json:"bundleType,omitempty"`
	RawFhir       bool                   `json:"rawFhir"`
	BundleContent string                 `json:"bundleContent,omitempty"`
	Consultation  map[string]interface{} `json:"consultation,omitempty"`
}

type LinkCareContextRequest struct {
	PatientReference      string         `json:"patientReference" validate:"notblank,patient_uuid"`
	PractitionerReference string         `json:"practitionerReference" validate:"notblank"`
	AppointmentReference  string         `json:"appointmentReference"`
	AppointmentStartDate  string         `json:"appointmentStartDate" validate:"notblank"`
	AppointmentEndDate    string         `json:"appointmentEndDate" validate:"notblank"`
	AppointmentPriority   *string        `json:"appointmentPriority,omitempty" validate:"omitnil,notblank"`
	OrganizationID        string         `json:"organizationId" validate:"notblank"`
	MobileNumber          string         `json:"mobileNumber" validate:"notblank"`
	AbhaAddress           string         `json:"abhaAddress,omitempty"`
	PatientName           string         `json:"patientName,omitempty"`
	HiType                string         `json:"hiType,omitempty"`
	HealthRecords         []HealthRecord `json:"healthRecords,omitempty"`
}

type CareContextRequest struct {
	PatientReference      string `json:"patientReference" validate:"notblank,hyphenated_uuid"`
	PractitionerReference string `json:"practitionerReference" validate:"notblank,hyphenated_uuid"`
	AppointmentReference  string `json:"appointmentReference" validate:"notblank,hyphenated_uuid"`
	HiType                string `json:"hiType,omitempty"`
	AppointmentDate       string `json:"appointmentDate" validate:"notblank"`
	ResendOtp             *bool  `json:"resendOtp" validate:"required"`
}

type VisitRecordsUpdateRequest struct {
	CareContextReference  string         `json:"careContextReference" validate:"notblank"`
	PatientReference      string         `json:"patientReference" validate:"notblank"`
	PractitionerReference string         `json:"practitionerReference" validate:"notblank"`
	AppointmentReference  string         `json:"appointmentReference" validate:"notblank"`
	AbhaAddress           string         `json:"abhaAddress,omitempty"`
	HealthRecords         []HealthRecord `json:"healthRecords"`
	MobileNumber          string         `json:"mobileNumber"`
	RequestID             string         `json:"requestId,omitempty"`
}

type LinkCareContextFinalRequest struct {
	RequestID            string  `json:"requestId" validate:"notblank"`
	AppointmentReference string  `json:"appointmentReference" validate:"notblank"`
	PatientAddress       string  `json:"patientAddress" validate:"notblank"`
	PatientName          string  `json:"patientName,omitempty"`
	PatientReference     string  `json:"patientReference" validate:"notblank"`
	CareContextReference string  `json:"careContextReference" validate:"notblank"`
	AuthMode             *string `json:"authMode" validate:"required,notblank"`
}

func (*LinkCareContextRequest) sagaRequest()      {}
func (*CareContextRequest) sagaRequest()          {}
func (*VisitRecordsUpdateRequest) sagaRequest()   {}
func (*LinkCareContextFinalRequest) sagaRequest() {}
