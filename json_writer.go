package getprice

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter builds the JSON objects of the output, whose keys must keep
// the documented order. The zero value is an empty object.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append writes key and the JSON encoding of value. After a failure further
// calls are no-ops and MarshalJSON reports the first error.
func (w *jsonObjectWriter) Append(key string, value interface{}) *jsonObjectWriter {
	if w.err != nil {
		return w
	}

	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}

	w.WriteString(fmt.Sprintf("%q:", key))
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// MarshalJSON returns the object written so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}
