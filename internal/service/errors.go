package service

import "errors"

var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
