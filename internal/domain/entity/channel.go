package entity

// Channel is the transport a conversation arrives on. WhatsApp identities are trusted; web ones are not.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelWeb      Channel = "web"
)

// IsValid checks if the Channel is a known value.
func (c Channel) IsValid() bool {
	return c == ChannelWhatsApp || c == ChannelWeb
}
