package coinbase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Time wraps time.Time to survive the exchange's timestamp dialects: RFC3339
// with varying precision on most endpoints, a space-separated form on ledger
// rows, epoch seconds on candles, and empty strings or nulls for fields like
// done_at that are unset on open orders.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02T15:04:05.999999",
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var sec int64
		if err2 := json.Unmarshal(b, &sec); err2 == nil {
			t.Time = time.Unix(sec, 0).UTC()
			return nil
		}
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	// oracle timestamps are epoch seconds inside a string
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.Unix(sec, 0).UTC()
		return nil
	}
	return fmt.Errorf("coinbase: unrecognized timestamp %q", s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
