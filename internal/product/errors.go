package product

// ValidationError reports a product that cannot be transmitted as configured:
// a required field is empty, the product type cannot be classified, or a
// field's schema type is incompatible with its configured role.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
