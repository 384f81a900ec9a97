package constants

// NATS Subjects
const (
	// Payment lifecycle events
	SubjectPaymentPrepared  = "payment.prepared"
	SubjectPaymentCompleted = "payment.completed"
	SubjectPaymentFailed    = "payment.failed"
	SubjectPaymentCancelled = "payment.cancelled"
)
