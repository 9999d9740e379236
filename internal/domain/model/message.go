package model

// GreenMessage is a player-to-player message with optional item attachments.
type GreenMessage struct {
	Recipient   string      `json:"recipient"`
	Body        string      `json:"body"`
	Attachments []ItemStack `json:"attachments"`
}

// Clone returns a copy that shares no slices with m.
func (m GreenMessage) Clone() GreenMessage {
	out := m
	out.Attachments = append([]ItemStack(nil), m.Attachments...)
	return out
}
