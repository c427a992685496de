// Package diagnostics provides opt-in, leveled tracing for debugging
// rule-engine invariants. It is never required for correct play --
// only a seam for investigating One-Hive regressions, replacing the
// commented-out fmt.Printf debug traces the teacher module left in
// internal/state/removable.go with a real leveled logger call.
package diagnostics

import "k8s.io/klog/v2"

// TraceArticulation logs, at V(3), the outcome of a single
// connectivity check: how many cells were reachable from start versus
// how many were occupied in total.
func TraceArticulation(start string, reachable, occupied int) {
	klog.V(3).Infof("hive: flood-fill from %s reached %d/%d occupied cells", start, reachable, occupied)
}
