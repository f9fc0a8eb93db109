package model

// Language is a UI locale.
type Language string

const (
	Bengali Language = "bn"
	English Language = "en"
)

// Theme is the color theme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Settings is the process-wide user preference state. Lock status is not
// part of it; the access gate owns that and always starts locked.
type Settings struct {
	Language Language
	Theme    Theme
	Currency string
}
