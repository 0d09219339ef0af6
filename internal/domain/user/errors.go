package user

import "errors"

var (
	ErrInvalidToken            = errors.New("Invalid or missing token")
	ErrUnknownRole             = errors.New("Unknown actor role")
	ErrRecruiterAccessRequired = errors.New("Recruiter access required")
	ErrStudentAccessRequired   = errors.New("Student access required")
)
