package timeline

import "fmt"

// InvalidDefinitionError reports a malformed animation definition caught at
// build time. Build fails fast on the first one: a broken plan built once
// would otherwise produce wrong values for every frame of a render.
type InvalidDefinitionError struct {
	Property string
	Reason   string
}

func (e *InvalidDefinitionError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("invalid animation definition: %s", e.Reason)
	}
	return fmt.Sprintf("invalid animation definition for %q: %s", e.Property, e.Reason)
}
