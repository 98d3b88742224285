package common

import "fmt"

// Combine merges multiple errors into one, skipping nils.
func Combine(errs ...error) error {
	var combined error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if combined == nil {
			combined = err
		} else {
			combined = fmt.Errorf("%v; %v", combined, err)
		}
	}
	return combined
}
