package model

// Payload is the chat message handed to the CI step output.
// Blocks hold transport-specific block values in display order.
type Payload struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
	Blocks  []any  `json:"blocks"`
}
