package utils

import (
	"abdm-link-service/internal/pkg/constvars"
	"abdm-link-service/internal/pkg/dto/requests"
)

func BuildCareContextRequest(request *requests.LinkCareContextRequest, appointmentReference, startDate, endDate string) *requests.CareContextRequest {
	resendOtp := false
	return &requests.CareContextRequest{
		PatientReference:      request.PatientReference,
		PractitionerReference: request.PractitionerReference,
		AppointmentReference:  appointmentReference,
		HiType:                request.HiType,
		AppointmentDate:       FormatAppointmentTimeRange(startDate, endDate),
		ResendOtp:             &resendOtp,
	}
}

func BuildVisitRecordsUpdateRequest(request *requests.LinkCareContextRequest, appointmentReference, careContextReference, requestID string) *requests.VisitRecordsUpdateRequest {
	healthRecords := request.HealthRecords
	if healthRecords == nil {
		healthRecords = []requests.HealthRecord{}
	}

	return &requests.VisitRecordsUpdateRequest{
		CareContextReference:  careContextReference,
		PatientReference:      request.PatientReference,
		PractitionerReference: request.PractitionerReference,
		AppointmentReference:  appointmentReference,
		AbhaAddress:           request.AbhaAddress,
		HealthRecords:         healthRecords,
		MobileNumber:          request.MobileNumber,
		RequestID:             requestID,
	}
}

func BuildLinkCareContextFinalRequest(request *requests.LinkCareContextRequest, careContextReference, appointmentReference, requestID string) *requests.LinkCareContextFinalRequest {
	authMode := constvars.AbdmAuthModeDemographics
	return &requests.LinkCareContextFinalRequest{
		RequestID:            requestID,
		AppointmentReference: appointmentReference,
		PatientAddress:       request.AbhaAddress,
		PatientName:          request.PatientName,
		PatientReference:     request.PatientReference,
		CareContextReference: careContextReference,
		AuthMode:             &authMode,
	}
}
