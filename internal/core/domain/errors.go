package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrForbidden          = errors.New("access forbidden")

	ErrMemberNotFound = errors.New("member not found")
	ErrMemberExists   = errors.New("member already exists")
	ErrMemberInactive = errors.New("member is inactive")

	ErrPlanNotFound = errors.New("membership plan not found")
	ErrPlanInactive = errors.New("membership plan is inactive")

	ErrReceptionistNotFound = errors.New("receptionist not found")
	ErrReceptionistExists   = errors.New("receptionist already exists")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrAlreadyCheckedIn      = errors.New("member is already checked in")
	ErrNoOpenSession         = errors.New("no active check-in session to check out")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time cannot be before check-in time")
	ErrDuplicateCheckIn      = errors.New("duplicate check-in submission")
)
