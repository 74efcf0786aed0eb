package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Domain colors
	FocusColor    string `json:"focus_color"`
	BreakColor    string `json:"break_color"`
	QuadrantColor string `json:"quadrant_color"`
	DoneColor     string `json:"done_color"`
	ChartBarColor string `json:"chart_bar_color"`
}

func defaultStyles(theme string) Styles {
	if theme == "light" {
		return Styles{
			BorderColor:       "250",
			AccentColor:       "161",
			NormalTextColor:   "235",
			SelectedTextColor: "229",
			SelectedBgColor:   "61",
			ErrorColor:        "1",
			FocusColor:        "161",
			BreakColor:        "29",
			QuadrantColor:     "61",
			DoneColor:         "242",
			ChartBarColor:     "61",
		}
	}

	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		FocusColor:        "205",
		BreakColor:        "78",
		QuadrantColor:     "63",
		DoneColor:         "240",
		ChartBarColor:     "63",
	}
}

// loadStyles loads the application styles from the specified path,
// writing the theme defaults on first run.
func loadStyles(stylesPath, theme string) (Styles, error) {
	defaults := defaultStyles(theme)

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaults, err
			}

			stylesData, err = json.MarshalIndent(defaults, "", "  ")
			if err != nil {
				return defaults, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaults, err
			}

			return defaults, nil
		}
		return defaults, err
	}

	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaults, err
	}

	return loadedStyles, nil
}
