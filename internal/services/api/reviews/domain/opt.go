package domain

import "encoding/json"

// Opt is a patch field that distinguishes absent from explicit null.
// Absent fields leave the stored value alone, null clears it
type Opt[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON marks the field present and records null vs value
func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON round-trips the value, absent and null both encode as null
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
