package domain

type ThemesSection string

const (
	SectionThemeList     ThemesSection = "list"
	SectionThemeSettings ThemesSection = "settings"
	SectionThemeInstall  ThemesSection = "install"
)

type SettingOption struct {
	Value string
	Label string
}

type ThemeSetting struct {
	ID          string `validate:"required"`
	Label       string
	Description string
	Type        string `validate:"oneof=checkbox text number list"`
	Value       string
	Options     []SettingOption
}

type Theme struct {
	ID           int `validate:"required"`
	Name         string `validate:"required"`
	Version      string
	ThemeURL     string
	ImagesURL    string
	ThemeDir     string
	Thumbnail    string
	Enabled      bool
	NumMembers   int
	Variants     []string
	Settings     []ThemeSetting `validate:"dive"`
	SettingsHref string
	RemoveHref   string
	ResetHref    string
}

type ThemesPage struct {
	Section        ThemesSection `validate:"required,oneof=list settings install"`
	Themes         []*Theme `validate:"dive"`
	DefaultThemeID int
	GuestThemeID   int
	Current        *Theme
	CanInstall     bool
	InstallDir     string
	FormHref       string
}
