package domain

import "time"

// AttendanceStatus tags how the visit was classified.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceMissed  AttendanceStatus = "MISSED"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// RecordedBy identifies who created an attendance log.
type RecordedBy string

const (
	RecordedByOwner        RecordedBy = "OWNER"
	RecordedByReceptionist RecordedBy = "RECEPTIONIST"
	RecordedBySystem       RecordedBy = "SYSTEM"
)

// RecordedByForRole maps a principal role to the recorder tag. Unknown or
// absent roles are attributed to the system.
func RecordedByForRole(role string) RecordedBy {
	switch role {
	case RoleOwner, RoleAdmin:
		return RecordedByOwner
	case RoleReceptionist:
		return RecordedByReceptionist
	}
	return RecordedBySystem
}

// AttendanceLog records one gym visit. A log with no CheckOutTime is an
// open session: the member is currently checked in. DurationMinutes is
// frozen at check-out; while the session is open callers derive a live
// approximation from CheckInTime.
type AttendanceLog struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	MemberID         string           `json:"memberId" bson:"member_id"`
	CheckInTime      time.Time        `json:"checkInTime" bson:"check_in_time"`
	CheckOutTime     *time.Time       `json:"checkOutTime,omitempty" bson:"check_out_time,omitempty"`
	AttendanceStatus AttendanceStatus `json:"attendanceStatus" bson:"attendance_status"`
	RecordedBy       RecordedBy       `json:"recordedBy" bson:"recorded_by"`
	DurationMinutes  *int             `json:"durationMinutes,omitempty" bson:"duration_minutes,omitempty"`
	CreatedAt        time.Time        `json:"createdAt" bson:"created_at"`
}

// Open reports whether the session has not been checked out yet.
func (l *AttendanceLog) Open() bool {
	return l.CheckOutTime == nil
}

// Close sets the check-out time and freezes the duration. The caller is
// responsible for ensuring at is not before CheckInTime.
func (l *AttendanceLog) Close(at time.Time) {
	t := at
	l.CheckOutTime = &t
	minutes := int(at.Sub(l.CheckInTime).Minutes())
	l.DurationMinutes = &minutes
}
