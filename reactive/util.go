package reactive

import "fmt"

// stringify backs every cell's String() method with the payload's own
// stringification, per spec.md §6 ("stringification as the payload's
// stringification").
func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}
