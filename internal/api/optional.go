package api

import "encoding/json"

// optionalString records whether a JSON key was present, so an explicit null
// can be told apart from an omitted field.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// orEmpty returns the value, or "" for null and absent keys.
func (o optionalString) orEmpty() string {
	if o.Value == nil {
		return ""
	}
	return *o.Value
}
