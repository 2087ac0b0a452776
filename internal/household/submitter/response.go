package submitter

import (
	"bytes"
	"encoding/json"
)

// firstFieldError reads a {"errors": {field: [message, ...]}} body and
// returns the first field, in document order, that has at least one message.
func firstFieldError(body []byte) (string, string, bool) {
	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}
	if len(body) == 0 || json.Unmarshal(body, &envelope) != nil || len(envelope.Errors) == 0 {
		return "", "", false
	}

	dec := json.NewDecoder(bytes.NewReader(envelope.Errors))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return "", "", false
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", "", false
		}
		field, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return "", "", false
		}
		var messages []json.RawMessage
		if json.Unmarshal(value, &messages) != nil {
			messages = []json.RawMessage{value}
		}
		for _, raw := range messages {
			if msg, ok := messageText(raw); ok {
				return field, msg, true
			}
		}
	}
	return "", "", false
}

func messageText(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, s != ""
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '{' || raw[0] == '[' || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	return string(raw), true
}
