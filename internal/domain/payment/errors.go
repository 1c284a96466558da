package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrExceedsBalance is returned when a payment would push the worker's
	// balance below zero and the caller did not confirm the overdraft.
	ErrExceedsBalance = errors.New("payment exceeds the worker's outstanding balance")
)
