package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// IDList is an ordered list of identifiers. It travels as a JSON array and is
// stored as a single comma-delimited string.
type IDList []string

// ParseIDList splits a comma-delimited string, dropping blanks.
func ParseIDList(value string) IDList {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	ids := make(IDList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func (l IDList) String() string {
	return strings.Join(l, ",")
}

func (l IDList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts either an array of strings/numbers or a delimited string.
func (l *IDList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ParseIDList(s)
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("id list must be an array or a comma separated string")
	}
	ids := make(IDList, 0, len(raw))
	for _, v := range raw {
		id := strings.TrimSpace(fmt.Sprint(v))
		if id != "" {
			ids = append(ids, id)
		}
	}
	*l = ids
	return nil
}

func (l IDList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(l.String())
}

func (l *IDList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		*l = nil
		return nil
	}
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		return err
	}
	*l = ParseIDList(s)
	return nil
}
