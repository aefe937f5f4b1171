package models

import "strings"

// SettingsID is the id of the singleton settings document.
const SettingsID = "main"

const DefaultKindergartenName = "Eventyrhagen Barnehage"

// legacyNames are placeholder names from early installs that get replaced on read.
var legacyNames = []string{"solstråle", "solstrale"}

type OpeningHours struct {
	Open  string `json:"open" validate:"omitempty,datetime=15:04"`
	Close string `json:"close" validate:"omitempty,datetime=15:04"`
}

type Settings struct {
	ID               string       `json:"-" gorm:"primaryKey"`
	KindergartenName string       `json:"kindergartenName"`
	KindergartenLogo *string      `json:"kindergartenLogo"`
	Address          string       `json:"address"`
	Phone            string       `json:"phone"`
	Email            string       `json:"email"`
	OpeningHours     OpeningHours `json:"openingHours" gorm:"serializer:json;type:jsonb"`
}

func (Settings) TableName() string {
	return "settings"
}

func DefaultSettings() Settings {
	return Settings{
		ID:               SettingsID,
		KindergartenName: DefaultKindergartenName,
		Address:          "Barnehageveien 1, 0001 Oslo",
		Phone:            "22 33 44 55",
		Email:            "post@solstrale.no",
		OpeningHours:     OpeningHours{Open: "07:00", Close: "17:00"},
	}
}

// HasLegacyName reports whether the kindergarten name still carries an old placeholder.
func (s Settings) HasLegacyName() bool {
	name := strings.ToLower(s.KindergartenName)
	for _, legacy := range legacyNames {
		if strings.Contains(name, legacy) {
			return true
		}
	}
	return false
}

// SettingsInput is a partial update of the settings document.
type SettingsInput struct {
	KindergartenName *string       `json:"kindergartenName" yaml:"kindergartenName" validate:"omitempty,min=1"`
	KindergartenLogo *string       `json:"kindergartenLogo" yaml:"kindergartenLogo"`
	Address          *string       `json:"address" yaml:"address"`
	Phone            *string       `json:"phone" yaml:"phone"`
	Email            *string       `json:"email" yaml:"email" validate:"omitempty,email"`
	OpeningHours     *OpeningHours `json:"openingHours" yaml:"openingHours" validate:"omitempty"`
}

// Apply copies the set fields of in onto s.
func (s *Settings) Apply(in SettingsInput) {
	if in.KindergartenName != nil {
		s.KindergartenName = *in.KindergartenName
	}
	if in.KindergartenLogo != nil {
		s.KindergartenLogo = in.KindergartenLogo
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.OpeningHours != nil {
		s.OpeningHours = *in.OpeningHours
	}
}
