package utils

import (
	"abdm-link-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCareContextRequest(t *testing.T) {
	request := validLinkRequest()

	mapped := BuildCareContextRequest(request, testAppointmentReference, request.AppointmentStartDate, request.AppointmentEndDate)

	assert.Equal(t, testPatientReference, mapped.PatientReference)
	assert.Equal(t, testPractitionerReference, mapped.PractitionerReference)
	assert.Equal(t, testAppointmentReference, mapped.AppointmentReference)
	assert.Equal(t, "OPConsultation", mapped.HiType)
	assert.Equal(t, "09:00 AM - 10:00 AM", mapped.AppointmentDate)
	require.NotNil(t, mapped.ResendOtp)
	assert.False(t, *mapped.ResendOtp)
}

func TestBuildVisitRecordsUpdateRequest(t *testing.T) {
	request := validLinkRequest()

	mapped := BuildVisitRecordsUpdateRequest(request, testAppointmentReference, "cc-ref-1", "req-1")

	assert.Equal(t, "cc-ref-1", mapped.CareContextReference)
	assert.Equal(t, testPatientReference, mapped.PatientReference)
	assert.Equal(t, testPractitionerReference, mapped.PractitionerReference)
	assert.Equal(t, testAppointmentReference, mapped.AppointmentReference)
	assert.Equal(t, "patient@sbx", mapped.AbhaAddress)
	assert.Equal(t, "9876543210", mapped.MobileNumber)
	assert.Equal(t, "req-1", mapped.RequestID)
	assert.Equal(t, request.HealthRecords, mapped.HealthRecords)

	request.HealthRecords = nil
	mapped = BuildVisitRecordsUpdateRequest(request, testAppointmentReference, "cc-ref-1", "req-1")
	assert.NotNil(t, mapped.HealthRecords)
	assert.Empty(t, mapped.HealthRecords)
}

func TestBuildLinkCareContextFinalRequest(t *testing.T) {
	request := validLinkRequest()

	mapped := BuildLinkCareContextFinalRequest(request, "cc-ref-1", testAppointmentReference, "req-1")

	assert.Equal(t, "req-1", mapped.RequestID)
	assert.Equal(t, testAppointmentReference, mapped.AppointmentReference)
	assert.Equal(t, "patient@sbx", mapped.PatientAddress)
	assert.Equal(t, "Asha Verma", mapped.PatientName)
	assert.Equal(t, testPatientReference, mapped.PatientReference)
	assert.Equal(t, "cc-ref-1", mapped.CareContextReference)
	require.NotNil(t, mapped.AuthMode)
	assert.Equal(t, "DEMOGRAPHICS", *mapped.AuthMode)
}

// A valid link request always maps into downstream requests that pass their
// own validation.
func TestMappedRequestsPassValidation(t *testing.T) {
	request := validLinkRequest()

	careContextRequest := BuildCareContextRequest(request, testAppointmentReference, request.AppointmentStartDate, request.AppointmentEndDate)
	assert.NoError(t, ValidateSagaRequest(careContextRequest))

	updateRequest := BuildVisitRecordsUpdateRequest(request, testAppointmentReference, "cc-ref-1", "req-1")
	assert.NoError(t, ValidateSagaRequest(updateRequest))

	finalRequest := BuildLinkCareContextFinalRequest(request, "cc-ref-1", testAppointmentReference, "req-1")
	assert.NoError(t, ValidateSagaRequest(finalRequest))
}

func TestStructToMap(t *testing.T) {
	resendOtp := false
	body, err := StructToMap(&requests.CareContextRequest{
		PatientReference: testPatientReference,
		AppointmentDate:  "09:00 AM - 10:00 AM",
		ResendOtp:        &resendOtp,
	})
	require.NoError(t, err)

	assert.Equal(t, testPatientReference, body["patientReference"])
	assert.Equal(t, false, body["resendOtp"])
	assert.NotContains(t, body, "hiType")

	_, err = StructToMap(make(chan int))
	assert.Error(t, err)
}
