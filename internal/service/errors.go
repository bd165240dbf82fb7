package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrClientNotFound is returned when a client is not found
	ErrClientNotFound = errors.New("client not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrRoomNotFound is returned when a room is not found
	ErrRoomNotFound = errors.New("room not found")

	// ErrItemNotFound is returned when a line item is not found
	ErrItemNotFound = errors.New("line item not found")

	// ErrTemplateNotFound is returned when an item template is not found
	ErrTemplateNotFound = errors.New("item template not found")

	// ErrMaterialNotFound is returned when a price-book entry is not found
	ErrMaterialNotFound = errors.New("material not found")

	// ErrTemplateInUse is returned when deleting a template that line items reference
	ErrTemplateInUse = errors.New("template is referenced by existing line items")

	// ErrInvalidStatusTransition is returned for a disallowed lifecycle move
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrClientHasProjects is returned when deleting a client that still owns projects
	ErrClientHasProjects = errors.New("client still has projects")

	// ErrPriceFeedDisabled is returned when a sync is requested without a configured feed
	ErrPriceFeedDisabled = errors.New("supplier price feed is not configured")
)
