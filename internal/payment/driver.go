package payment

// Driver is the interface that all payment gateway drivers implement.
type Driver interface {
	// SetConfig sets the gateway credentials for the driver
	SetConfig(config map[string]interface{}) error

	// Pay initiates a payment and returns the jump URL the client is
	// redirected to. notifyURL already contains the payment config
	// UUID in its path.
	Pay(orderID string, amount float64, notifyURL string, returnURL string, params map[string]interface{}) (string, error)

	// Notify verifies the callback parameters.
	// Returns: isValid, orderID, externalID, error
	Notify(params map[string]interface{}) (bool, string, string, error)
}
