/*
Package errors provides semantic error types for the dataset library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound          = errors.New("entity not found")
	    ErrReentrantMutation = errors.New("reentrant mutation during notification")
	    ErrInvalidPartial    = errors.New("invalid partial update")
	    ErrListenerFault     = errors.New("listener fault")
	    ErrNoKeyMap          = errors.New("no key map registered for type")
	)

Usage:

	// Check error type
	landmark, err := store.GetOne(ctx, "123")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, fmt.Errorf("landmark %s does not exist", "123")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("Landmark", "123")
	err := errors.NewPartialError("label", "cannot assign int to field of type string")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
