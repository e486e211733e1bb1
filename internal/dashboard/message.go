// Package dashboard serves live selector telemetry over HTTP and websockets.
package dashboard

// MessageType indicates the websocket message format
type MessageType int

const (
	// JSONMessage is a JSON-encoded message
	JSONMessage MessageType = iota
	// BinaryMessage is raw binary data
	BinaryMessage
)

// Message represents a message to be broadcast to clients
type Message struct {
	Type MessageType
	Data []byte
}

func NewJSONMessage(data []byte) Message {
	return Message{Type: JSONMessage, Data: data}
}

func NewBinaryMessage(data []byte) Message {
	return Message{Type: BinaryMessage, Data: data}
}

// Envelope wraps every JSON message pushed to websocket clients.
type Envelope struct {
	Type string `json:"type"` // scan, status, selection
	Data any    `json:"data"`
}
