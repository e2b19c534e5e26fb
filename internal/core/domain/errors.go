package domain

import "errors"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrContentUnitNotFound = errors.New("content unit not found")
	ErrUnknownTaskStatus   = errors.New("unknown task status")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrDeliverableRequired = errors.New("deliverable required before review")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrSessionExpired      = errors.New("session expired")
)
