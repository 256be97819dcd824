package main

import "fmt"

// ServiceError ties a failure to the pipeline stage that produced it
type ServiceError struct {
	Service   string // e.g. "Export"
	Operation string // e.g. "PDF"
	Err       error
}

// Error formats as [Service.Operation] error message
func (e *ServiceError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Service, e.Operation, e.Err)
}

// Unwrap supports errors.Is/errors.As through the chain
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// WrapError attaches stage context to err. A nil err stays nil.
func WrapError(service, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Err: err}
}
