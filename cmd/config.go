package cmd

import "time"

// Config carries all runtime settings, populated from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ServiceName is attached to payment metadata and must match the
	// service name configured at the payment provider.
	ServiceName string

	// ServiceToken is the bearer token expected on webhook calls.
	ServiceToken string

	// WebhookStrictAuth rejects webhooks with a bad token instead of
	// logging and processing them anyway.
	WebhookStrictAuth bool

	PaystackBaseURL   string
	PaystackSecretKey string
	PaystackTimeout   time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string

	// StalePaymentThreshold is how long an order may sit in a non-final
	// status before the report job flags it.
	StalePaymentThreshold time.Duration
}
