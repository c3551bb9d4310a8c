package models

import (
	"mindcare-service/internal/pkg/constvars"
	"time"
)

type Appointment struct {
	ID          string
	TherapistID string
	PatientID   string
	PatientName string
	Date        string
	Time        string
	Status      string
	CreatedAt   *time.Time
}

func AppointmentFromDocument(doc Document) Appointment {
	appointment := Appointment{
		ID:          doc.ID,
		TherapistID: doc.String(constvars.AppointmentFieldTherapistID),
		PatientID:   doc.String(constvars.AppointmentFieldPatientID),
		PatientName: doc.String(constvars.AppointmentFieldPatientName),
		Date:        doc.String(constvars.AppointmentFieldDate),
		Time:        doc.String(constvars.AppointmentFieldTime),
		Status:      doc.String(constvars.AppointmentFieldStatus),
	}
	if createdAt, ok := doc.Time(constvars.AppointmentFieldCreatedAt); ok {
		appointment.CreatedAt = &createdAt
	}
	return appointment
}

// IsUpcomingStatus reports whether the appointment is a confirmed session.
func (a Appointment) IsUpcomingStatus() bool {
	return a.Status == constvars.AppointmentStatusScheduled || a.Status == constvars.AppointmentStatusAccepted
}
