package optional

import "encoding/json"

// Optional distinguishes a JSON field that is absent from one that is
// present, including present-with-null. A plain pointer cannot make that
// distinction, which partial updates require.
type Optional[T any] struct {
	Value   T
	Present bool
}

func Of[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Present: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}
