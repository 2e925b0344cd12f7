package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// KeyedFloat is one entry of a JSON object whose key order matters.
type KeyedFloat struct {
	Key   string
	Value float64
}

// KeyedFloats decodes a JSON object into a slice that preserves the
// original key order. encoding/json maps lose it, and the forecast
// period tables are rendered in emission order when period priorities
// tie. Values that are not numbers decode as NaN.
type KeyedFloats []KeyedFloat

func (m *KeyedFloats) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("keyed floats: expected object, got %v", tok)
	}

	out := KeyedFloats{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("keyed floats: non-string key %v", kt)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		val := math.NaN()
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			val = f
		}
		out = append(out, KeyedFloat{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

func (m KeyedFloats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if math.IsNaN(kv.Value) {
			buf.WriteString("null")
		} else {
			v, err := json.Marshal(kv.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(v)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value for key and whether it was present.
func (m KeyedFloats) Get(key string) (float64, bool) {
	for _, kv := range m {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return 0, false
}

// KeyedStringList is one role's recommendation list.
type KeyedStringList struct {
	Key   string
	Items []string
}

// KeyedStringLists preserves the emission order of the
// business_recommendations object.
type KeyedStringLists []KeyedStringList

func (m *KeyedStringLists) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("keyed string lists: expected object, got %v", tok)
	}

	out := KeyedStringLists{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("keyed string lists: non-string key %v", kt)
		}

		var items []string
		if err := dec.Decode(&items); err != nil {
			return err
		}
		out = append(out, KeyedStringList{Key: key, Items: items})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

func (m KeyedStringLists) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(kv.Items)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
