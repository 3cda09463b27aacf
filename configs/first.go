package configs

// First returns the first value at path, or the zero value when absent or when the files do not load.
// Callers wanting load errors check Loader.Err.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		var zero T
		return zero
	}
	return value
}
