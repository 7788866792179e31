package ws

import "encoding/json"

// Telemetry is pushed to viewers as the bare snapshot object; there is no
// envelope. Inbound traffic is the reserved control channel: viewers may
// send arbitrary JSON objects, which are logged and otherwise ignored until
// manual-control features exist.

// ControlMessage is the loosely-typed shape of an inbound viewer message.
// Only Type is inspected today; the rest of the payload is kept raw.
type ControlMessage struct {
	Type string `json:"type"`

	raw json.RawMessage
}

// parseControl validates that data is a JSON object and extracts its type
// field. Non-object or syntactically invalid payloads are rejected.
func parseControl(data []byte) (ControlMessage, error) {
	var msg ControlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ControlMessage{}, err
	}
	msg.raw = data
	return msg, nil
}
