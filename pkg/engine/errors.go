package engine

import "fmt"

// CycleError reports a rule that would make the replacement graph cyclic.
// Cycles are fatal to a run: a rule set containing `a -> b` and `b -> a` has
// no consistent resolution, so ingestion stops at the offending rule.
type CycleError struct {
	Key   string
	Value string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("Cycle detected when trying to add replacement rule: %s -> %s", e.Key, e.Value)
}
