package types

// DefaultLocale is the active locale before anyone has picked one.
const DefaultLocale = "en_US"

// Settings is the server-owned application state shared by every card.
type Settings struct {
	Locale string `json:"locale"`
}
