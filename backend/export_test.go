package backend

// reset clears the process-wide selection so tests can exercise the
// unselected state regardless of execution order.
func reset() {
	mu.Lock()
	active = nil
	activeName = ""
	mu.Unlock()
}
