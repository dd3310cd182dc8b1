package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyItems is returned when an itemUpdate carries more than MaxUpdateItems items.
	ErrTooManyItems = errors.New("too many items in one request")
	// ErrNoItems is returned when a batch call has nothing to send.
	ErrNoItems = errors.New("no items given")
	// ErrMissingItemID is returned when a call that targets an existing item lacks its id.
	ErrMissingItemID = errors.New("item id is required")
	// ErrInvalidItem is returned when an item payload fails struct validation.
	ErrInvalidItem = errors.New("invalid item payload")
	// ErrInvalidDetailLevel is returned for an itemStatus detail level outside image/description.
	ErrInvalidDetailLevel = errors.New("invalid detail level")
	// ErrInvalidItemStatus is returned for an itemList status outside sold/unsuccessful/running.
	ErrInvalidItemStatus = errors.New("invalid item status")
	// ErrInvalidDateRange is returned for an unknown date range type or an inverted range.
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrInvalidListMode is returned for an orderList mode outside details/orderIDs.
	ErrInvalidListMode = errors.New("invalid list mode")
)

// ValidationError is a request rejected before it reached the network.
type ValidationError struct {
	// Function is the Hood.de function being built.
	Function string
	// Err is one of the sentinel errors of this package.
	Err error
	// Detail adds the offending value.
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Function, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Function, e.Err, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(function string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{Function: function, Err: err, Detail: fmt.Sprintf(format, args...)}
}
