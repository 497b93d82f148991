package persistence

import (
	"encoding/json"
	"fmt"
	"taskara-review-service/internal/utils"
	"time"
)

// EncodeList stores a list column as JSON text. Nil encodes as "[]".
func EncodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeList is the inverse of EncodeList. Text that is not a JSON string array is a corrupt record.
func DecodeList(column, raw string) ([]string, error) {
	out := []string{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: column %s: %w", utils.ErrCorruptRecord, column, err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// ToEpoch and FromEpoch convert timestamps to the float seconds kept in created/updated.
func ToEpoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func FromEpoch(f float64) time.Time {
	return time.Unix(0, int64(f*float64(time.Second)))
}

func ToEpochPtr(t *time.Time) *float64 {
	if t == nil {
		return nil
	}
	f := ToEpoch(*t)
	return &f
}

func FromEpochPtr(f *float64) *time.Time {
	if f == nil {
		return nil
	}
	t := FromEpoch(*f)
	return &t
}

// RequirementColumns is the encoded form of the four list fields of a requirement.
type RequirementColumns struct {
	Users  string
	Agents string
	Groups string
	Types  string
}

func EncodeRequirementLists(users, agents, groups, types []string) (RequirementColumns, error) {
	var c RequirementColumns
	var err error
	if c.Users, err = EncodeList(users); err != nil {
		return c, err
	}
	if c.Agents, err = EncodeList(agents); err != nil {
		return c, err
	}
	if c.Groups, err = EncodeList(groups); err != nil {
		return c, err
	}
	if c.Types, err = EncodeList(types); err != nil {
		return c, err
	}
	return c, nil
}

func DecodeRequirementLists(c RequirementColumns) (users, agents, groups, types []string, err error) {
	if users, err = DecodeList("users", c.Users); err != nil {
		return
	}
	if agents, err = DecodeList("agents", c.Agents); err != nil {
		return
	}
	if groups, err = DecodeList("groups", c.Groups); err != nil {
		return
	}
	types, err = DecodeList("types", c.Types)
	return
}
