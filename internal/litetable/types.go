package litetable

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Kind is the type tag carried by every Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTimestamp:
		return "timestamp"
	default:
		return "null"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string":
		return KindString, nil
	case "number":
		return KindNumber, nil
	case "timestamp":
		return KindTimestamp, nil
	case "null", "":
		return KindNull, nil
	}
	return KindNull, fmt.Errorf("unknown value type: %s", s)
}

// Value is a single cell in a column family. The zero Value is Null.
type Value struct {
	kind Kind
	str  string
	num  float64
	ts   time.Time
}

func String(s string) Value { return Value{kind: KindString, str: s} }

func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

func Timestamp(t time.Time) Value { return Value{kind: KindTimestamp, ts: t} }

func Null() Value { return Value{} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload and whether v is a string.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Num returns the numeric payload and whether v is a number.
func (v Value) Num() (float64, bool) { return v.num, v.kind == KindNumber }

// Time returns the timestamp payload and whether v is a timestamp.
func (v Value) Time() (time.Time, bool) { return v.ts, v.kind == KindTimestamp }

// Equal compares kind and payload. Timestamps compare by instant.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindTimestamp:
		return v.ts.Equal(o.ts)
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindTimestamp:
		return v.ts.Format(time.RFC3339Nano)
	}
	return "null"
}

type wireValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes v as {"type": "...", "value": ...}.
func (v Value) MarshalJSON() ([]byte, error) {
	w := wireValue{Type: v.kind.String()}
	var err error
	switch v.kind {
	case KindString:
		w.Value, err = json.Marshal(v.str)
	case KindNumber:
		w.Value, err = json.Marshal(v.num)
	case KindTimestamp:
		w.Value, err = json.Marshal(v.ts.Format(time.RFC3339Nano))
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var w wireValue
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	kind, err := ParseKind(w.Type)
	if err != nil {
		return err
	}
	if kind != KindNull && (len(w.Value) == 0 || bytes.Equal(w.Value, []byte("null"))) {
		return fmt.Errorf("missing %s value", kind)
	}

	switch kind {
	case KindNull:
		*v = Null()
	case KindString:
		var s string
		if err = json.Unmarshal(w.Value, &s); err != nil {
			return fmt.Errorf("invalid string value: %w", err)
		}
		*v = String(s)
	case KindNumber:
		var f float64
		if err = json.Unmarshal(w.Value, &f); err != nil {
			return fmt.Errorf("invalid number value: %w", err)
		}
		*v = Number(f)
	case KindTimestamp:
		var s string
		if err = json.Unmarshal(w.Value, &s); err != nil {
			return fmt.Errorf("invalid timestamp value: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp format: %s", s)
		}
		*v = Timestamp(t)
	}
	return nil
}

// Record is the set of cells one row key holds inside a single family.
type Record map[string]Value

// Clone returns a copy of r that shares no state with it.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}
