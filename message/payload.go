package message

import (
	"encoding/json"
	"fmt"
)

// MarkupFormat tags text payloads with the webhook's native markup.
const MarkupFormat = "mrkdwn"

// Payload is the final JSON body posted to the webhook
type Payload map[string]any

// NewTextPayload wraps text in a text block tagged with MarkupFormat
func NewTextPayload(text string) Payload {
	return Payload{
		"type": MarkupFormat,
		"text": text,
	}
}

// Validate checks that the payload can be delivered
func (p Payload) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("payload is empty")
	}
	return nil
}

// Text returns the text body of a text payload, if any
func (p Payload) Text() (string, bool) {
	text, ok := p["text"].(string)
	return text, ok
}

// Bytes returns the JSON-encoded payload
func (p Payload) Bytes() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}
	return data, nil
}

// ParsePayload decodes a JSON object into a Payload
func ParsePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshaling payload: %w", err)
	}
	return p, nil
}
