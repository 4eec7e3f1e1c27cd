package idgen

import (
	"encoding/json"
	"fmt"
)

// ID is a snowflake identifier. It is stored as a BIGINT and travels over
// the wire as its base62 string.
type ID int64

func (id ID) String() string {
	return Encode(int64(id))
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) IsZero() bool {
	return id == 0
}

// Parse accepts the base62 form produced by String.
func Parse(s string) (ID, error) {
	n, err := Decode(s)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: expected string", ErrInvalidID)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
