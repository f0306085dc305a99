package protocol

// Payloads coming in from the client.

// PaddleMove is the raw paddle request. The server clamps Y to the field
// before applying it; clients may send anything.
type PaddleMove struct {
	Y float64 `json:"y"`
}
