package impl

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	accountColumns = map[string]string{
		"name":        "name",
		"email":       "email",
		"role":        "role",
		"phone":       "phone",
		"relation":    "relation",
		"avatar":      "avatar",
		"deviceToken": "device_token",
		"firebaseUid": "firebase_uid",
		"lang":        "lang",
		"updatedAt":   "updated_at",
	}
	childColumns = map[string]string{
		"name":            "name",
		"age":             "age",
		"group":           "group",
		"avatar":          "avatar",
		"isCheckedIn":     "is_checked_in",
		"checkedInAt":     "checked_in_at",
		"checkedOutAt":    "checked_out_at",
		"parentIds":       "parent_ids",
		"primaryParentId": "primary_parent_id",
		"notes":           "notes",
		"updatedAt":       "updated_at",
	}
	calendarColumns = map[string]string{
		"title":       "title",
		"description": "description",
		"date":        "date",
		"time":        "time",
		"type":        "type",
		"color":       "color",
		"recurrence":  "recurrence",
		"updatedAt":   "updated_at",
	}
	settingsColumns = map[string]string{
		"kindergartenName": "kindergarten_name",
		"kindergartenLogo": "kindergarten_logo",
		"address":          "address",
		"phone":            "phone",
		"email":            "email",
		"openingHours":     "opening_hours",
	}
)

// toColumns maps a partial update onto column names. JSON-typed values are
// encoded for their jsonb columns. Unknown keys are rejected.
func toColumns(fields repositories.Fields, known map[string]string, stampUpdatedAt bool) (map[string]interface{}, error) {
	cols := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		col, ok := known[key]
		if !ok {
			return nil, fmt.Errorf("unknown field %q", key)
		}
		switch v := value.(type) {
		case []string, []models.Note, models.OpeningHours, *models.OpeningHours:
			raw, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("encode %s: %w", key, err)
			}
			cols[col] = gorm.Expr("?::jsonb", string(raw))
		default:
			cols[col] = value
		}
	}
	if _, ok := known["updatedAt"]; ok && stampUpdatedAt {
		if _, set := cols["updated_at"]; !set {
			cols["updated_at"] = now()
		}
	}
	return cols, nil
}

func now() *string {
	return models.FormatTimestamp(time.Now())
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}

// updateByID applies cols to the row with id and reports ErrNotFound when no row matched.
func updateByID(db *gorm.DB, model interface{}, id string, cols map[string]interface{}) error {
	result := db.Model(model).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func deleteByID(db *gorm.DB, model interface{}, id string) error {
	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
