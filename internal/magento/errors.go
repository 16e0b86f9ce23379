package magento

import "fmt"

// RemoteError reports a failure the catalog itself signalled: a GraphQL
// errors array or a non-200 saveProduct status.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote api: %s", e.Message)
}

// TransportError reports that the request never produced a usable response:
// connection failures and timeouts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
