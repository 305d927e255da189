package domain

// Language is a supported UI language
type Language string

const (
	LanguageIndonesian Language = "id"
	LanguageEnglish    Language = "en"
)

// DefaultLanguage is used until the user picks one
const DefaultLanguage = LanguageIndonesian

// Valid reports whether the language has a translation table
func (l Language) Valid() bool {
	return l == LanguageIndonesian || l == LanguageEnglish
}

// Theme is the colour scheme preference
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether the theme is known
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Keys in the durable preference store
const (
	PrefLanguage            = "language"
	PrefTheme               = "theme"
	PrefOnboardingCompleted = "onboarding_completed"
)
