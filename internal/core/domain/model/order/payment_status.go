package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentStatus tracks the payment side of an order independently of the
// fulfilment status. Only a payment-status field is tracked; there is no
// gateway protocol behind it.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of every new order.
	PaymentPending

	// PaymentProcessing indicates a payment attempt is in flight.
	PaymentProcessing

	// Paid indicates payment completed. Recording it while the order is still
	// pending auto-advances the order to processing.
	Paid

	// Failed indicates the payment attempt was declined.
	Failed

	// Refunded indicates a completed payment was returned.
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentPending:       "pending",
		PaymentProcessing:    "processing",
		Paid:                 "paid",
		Failed:               "failed",
		Refunded:             "refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:    "pending",
		PaymentProcessing: "processing",
		Paid:              "paid",
		Failed:            "failed",
		Refunded:          "refunded",
	}
}

// PaymentStatusFromString parses a payment status from its lowercase string
// representation. Returns an error for unknown values.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
