// Package patch merges partial PATCH payloads onto stored values.
package patch

// Value returns *update when the client sent the field, otherwise current.
func Value[T any](update *T, current T) T {
	if update == nil {
		return current
	}
	return *update
}

// Optional is Value for fields that may themselves be absent on the stored record.
func Optional[T any](update, current *T) *T {
	if update == nil {
		return current
	}
	v := *update
	return &v
}
