package machines

// Run executes until halt, yielding every executed step.
// Stopping the iteration stops the machine; it can be resumed with another Run.
func (m *Machine) Run(yield func(Step, error) bool) {
	for !m.Halted() {
		step, err := m.Step()
		if !yield(step, err) {
			return
		}
		if err != nil {
			return
		}
	}
}

// Exec runs to halt and returns the first error.
func (m *Machine) Exec() error {
	for _, err := range m.Run {
		if err != nil {
			return err
		}
	}
	return nil
}
