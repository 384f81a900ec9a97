package payment

//go:generate mockgen -destination=mocks/mock_events.go -package=mocks github.com/bekzodtm/shoppay/services/payment EventPublisher

// EventPublisher publishes payment lifecycle events after committed
// transitions. The NATS client satisfies this interface.
type EventPublisher interface {
	PublishJSON(subject string, message interface{}) error
}
