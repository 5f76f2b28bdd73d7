package entities

import (
	"encoding/json"
	"time"

	"growlog/pkg/apperr"
)

// Optional is a patch field that tells "absent" apart from an explicit null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some is a set, non-null Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: &v} }

// Null is a set Optional that clears the field.
func Null[T any]() Optional[T] { return Optional[T]{Set: true} }

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// AssignTo overwrites *dst when the field was present.
func (o Optional[T]) AssignTo(dst **T) {
	if o.Set {
		*dst = o.Value
	}
}

// DateLayout is the wire format of cycle and log dates.
const DateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD date. Empty gives the zero time so defaults apply.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperr.NewValidation("date", "date must be YYYY-MM-DD")
	}
	return d, nil
}
