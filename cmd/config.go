package cmd

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
)

const (
	defaultPendingOrderTimeout = 15 * time.Minute
	defaultExpirySchedule      = "0 * * * * *"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AMQPURL                         string
	PaymentRequestQueue             string
	PaymentResponseQueue            string
	RestaurantApprovalRequestQueue  string
	RestaurantApprovalResponseQueue string
	RestaurantMenuQueue             string

	PendingOrderTimeout time.Duration
	ExpirySchedule      string
}

// ParseConfig reads the configuration through getenv, typically os.Getenv after
// the .env file was loaded.
func ParseConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:                        getenv("HTTP_PORT"),
		DBHost:                          getenv("DB_HOST"),
		DBPort:                          getenv("DB_PORT"),
		DBUser:                          getenv("DB_USER"),
		DBPassword:                      getenv("DB_PASSWORD"),
		DBName:                          getenv("DB_NAME"),
		DBSslMode:                       getenv("DB_SSLMODE"),
		AMQPURL:                         getenv("AMQP_URL"),
		PaymentRequestQueue:             getenv("PAYMENT_REQUEST_QUEUE"),
		PaymentResponseQueue:            getenv("PAYMENT_RESPONSE_QUEUE"),
		RestaurantApprovalRequestQueue:  getenv("RESTAURANT_APPROVAL_REQUEST_QUEUE"),
		RestaurantApprovalResponseQueue: getenv("RESTAURANT_APPROVAL_RESPONSE_QUEUE"),
		RestaurantMenuQueue:             getenv("RESTAURANT_MENU_QUEUE"),
		PendingOrderTimeout:             defaultPendingOrderTimeout,
		ExpirySchedule:                  getenv("PENDING_ORDER_EXPIRY_SCHEDULE"),
	}

	if config.ExpirySchedule == "" {
		config.ExpirySchedule = defaultExpirySchedule
	}

	if raw := getenv("PENDING_ORDER_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("PENDING_ORDER_TIMEOUT", err)
		}
		if timeout <= 0 {
			return Config{}, errs.NewValueIsInvalidErrorWithCause(
				"PENDING_ORDER_TIMEOUT", fmt.Errorf("%s is not positive", timeout),
			)
		}
		config.PendingOrderTimeout = timeout
	}

	required := map[string]string{
		"HTTP_PORT":                          config.HTTPPort,
		"DB_HOST":                            config.DBHost,
		"DB_NAME":                            config.DBName,
		"AMQP_URL":                           config.AMQPURL,
		"PAYMENT_REQUEST_QUEUE":              config.PaymentRequestQueue,
		"PAYMENT_RESPONSE_QUEUE":             config.PaymentResponseQueue,
		"RESTAURANT_APPROVAL_REQUEST_QUEUE":  config.RestaurantApprovalRequestQueue,
		"RESTAURANT_APPROVAL_RESPONSE_QUEUE": config.RestaurantApprovalResponseQueue,
		"RESTAURANT_MENU_QUEUE":              config.RestaurantMenuQueue,
	}
	var missing []error
	for name, value := range required {
		if value == "" {
			missing = append(missing, errs.NewValueIsRequiredError(name))
		}
	}
	if err := errors.Join(missing...); err != nil {
		return Config{}, err
	}

	return config, nil
}

// DSN renders the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
