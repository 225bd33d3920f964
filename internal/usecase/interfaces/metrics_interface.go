package interfaces

import "time"

// IPaymentMetrics records payment outcomes.
type IPaymentMetrics interface {
	PaymentCreated(method, target, processorStatus string)
	ProcessorCall(operation, outcome string, elapsed time.Duration)
	LedgerCredited(target string)
	CreditingIncomplete(target string)
}
