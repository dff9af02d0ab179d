package entity

import (
	"encoding/json"
	"errors"
	"strconv"
)

// NoteID identifies a note across every store. Sequential ids from the
// in-memory store are encoded as JSON numbers, opaque database ids
// (ObjectID hex, UUID) as JSON strings.
type NoteID string

func NoteIDFromInt(n int64) NoteID {
	return NoteID(strconv.FormatInt(n, 10))
}

// Int reports the sequential value of the id, if it has one.
func (id NoteID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != string(id) {
		return 0, false
	}
	return n, true
}

func (id NoteID) String() string {
	return string(id)
}

func (id NoteID) MarshalJSON() ([]byte, error) {
	if _, ok := id.Int(); ok {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *NoteID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty note id")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = NoteID(s)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = NoteIDFromInt(n)
	return nil
}
