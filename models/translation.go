package models

// Translation is one user-facing message in every supported language.
type Translation struct {
	Key       string `json:"key" yaml:"key"`
	Norwegian string `json:"nb" yaml:"nb"`
	English   string `json:"en" yaml:"en"`
}
