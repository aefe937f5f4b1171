package firestore

import (
	"Henteklar/models"
	"time"

	fs "cloud.google.com/go/firestore"
)

// document reads loosely typed Firestore data. A field that is missing or has
// an unexpected type reads as the zero value.
type document map[string]interface{}

func (d document) str(key string) string {
	s, _ := d[key].(string)
	return s
}

func (d document) optStr(key string) *string {
	if s, ok := d[key].(string); ok {
		return &s
	}
	return nil
}

func (d document) boolean(key string) bool {
	b, _ := d[key].(bool)
	return b
}

func (d document) integer(key string) int {
	switch n := d[key].(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

func (d document) strings(key string) []string {
	raw, _ := d[key].([]interface{})
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (d document) object(key string) document {
	m, _ := d[key].(map[string]interface{})
	return document(m)
}

func (d document) timestamp(key string) *string {
	return models.FormatTimestamp(d[key])
}

func toAccount(snap *fs.DocumentSnapshot) models.Account {
	d := document(snap.Data())
	return models.Account{
		ID:          snap.Ref.ID,
		Name:        d.str("name"),
		Email:       d.str("email"),
		Role:        d.str("role"),
		Phone:       d.str("phone"),
		Relation:    d.str("relation"),
		Avatar:      d.str("avatar"),
		DeviceToken: d.str("deviceToken"),
		FirebaseUID: d.str("firebaseUid"),
		Lang:        d.str("lang"),
		CreatedAt:   d.timestamp("createdAt"),
		UpdatedAt:   d.timestamp("updatedAt"),
	}
}

func accountData(a models.Account) map[string]interface{} {
	data := map[string]interface{}{
		"name":      a.Name,
		"email":     a.Email,
		"role":      a.Role,
		"phone":     a.Phone,
		"relation":  a.Relation,
		"avatar":    a.Avatar,
		"createdAt": timestampOrNow(a.CreatedAt),
		"updatedAt": fs.ServerTimestamp,
	}
	if a.DeviceToken != "" {
		data["deviceToken"] = a.DeviceToken
	}
	if a.Lang != "" {
		data["lang"] = a.Lang
	}
	if a.FirebaseUID != "" {
		data["firebaseUid"] = a.FirebaseUID
	}
	return data
}

func toChild(snap *fs.DocumentSnapshot) models.Child {
	d := document(snap.Data())
	child := models.Child{
		ID:              snap.Ref.ID,
		Name:            d.str("name"),
		Age:             d.integer("age"),
		Group:           d.str("group"),
		Avatar:          d.str("avatar"),
		IsCheckedIn:     d.boolean("isCheckedIn"),
		CheckedInAt:     d.optStr("checkedInAt"),
		CheckedOutAt:    d.optStr("checkedOutAt"),
		ParentIDs:       d.strings("parentIds"),
		PrimaryParentID: d.optStr("primaryParentId"),
		CreatedAt:       d.timestamp("createdAt"),
		UpdatedAt:       d.timestamp("updatedAt"),
	}
	raw, _ := d["notes"].([]interface{})
	child.Notes = make([]models.Note, 0, len(raw))
	for _, item := range raw {
		n, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		nd := document(n)
		ts := ""
		if s := nd.timestamp("timestamp"); s != nil {
			ts = *s
		}
		child.Notes = append(child.Notes, models.Note{ID: nd.str("id"), Text: nd.str("text"), Timestamp: ts})
	}
	return child
}

func childData(c models.Child) map[string]interface{} {
	return map[string]interface{}{
		"name":            c.Name,
		"age":             c.Age,
		"group":           c.Group,
		"avatar":          c.Avatar,
		"isCheckedIn":     c.IsCheckedIn,
		"checkedInAt":     storeValue(c.CheckedInAt),
		"checkedOutAt":    storeValue(c.CheckedOutAt),
		"parentIds":       storeValue(c.ParentIDs),
		"primaryParentId": storeValue(c.PrimaryParentID),
		"notes":           notesData(c.Notes),
		"createdAt":       timestampOrNow(c.CreatedAt),
		"updatedAt":       fs.ServerTimestamp,
	}
}

func notesData(notes []models.Note) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(notes))
	for _, n := range notes {
		out = append(out, map[string]interface{}{"id": n.ID, "text": n.Text, "timestamp": n.Timestamp})
	}
	return out
}

func toCheckinLog(snap *fs.DocumentSnapshot) models.CheckinLog {
	d := document(snap.Data())
	return models.CheckinLog{
		ID:          snap.Ref.ID,
		ChildID:     d.str("childId"),
		ChildName:   d.str("childName"),
		Action:      d.str("action"),
		Date:        d.str("date"),
		Time:        d.str("time"),
		PerformedBy: d.str("performedBy"),
		Timestamp:   d.timestamp("timestamp"),
	}
}

func checkinLogData(l models.CheckinLog) map[string]interface{} {
	return map[string]interface{}{
		"childId":     l.ChildID,
		"childName":   l.ChildName,
		"action":      l.Action,
		"date":        l.Date,
		"time":        l.Time,
		"performedBy": l.PerformedBy,
		"timestamp":   timestampOrNow(l.Timestamp),
	}
}

func toHistoryEntry(snap *fs.DocumentSnapshot) models.HistoryEntry {
	d := document(snap.Data())
	return models.HistoryEntry{
		ID:        snap.Ref.ID,
		Action:    d.str("action"),
		ChildID:   d.str("childId"),
		ChildName: d.str("childName"),
		Timestamp: d.timestamp("timestamp"),
	}
}

func historyData(h models.HistoryEntry) map[string]interface{} {
	return map[string]interface{}{
		"action":    h.Action,
		"childId":   h.ChildID,
		"childName": h.ChildName,
		"timestamp": timestampOrNow(h.Timestamp),
	}
}

func toCalendarEvent(snap *fs.DocumentSnapshot) models.CalendarEvent {
	d := document(snap.Data())
	return models.CalendarEvent{
		ID:          snap.Ref.ID,
		Title:       d.str("title"),
		Description: d.str("description"),
		Date:        d.str("date"),
		Time:        d.str("time"),
		Type:        d.str("type"),
		Color:       d.str("color"),
		CreatedBy:   d.str("createdBy"),
		Recurrence:  d.str("recurrence"),
		CreatedAt:   d.timestamp("createdAt"),
		UpdatedAt:   d.timestamp("updatedAt"),
	}
}

func calendarEventData(e models.CalendarEvent) map[string]interface{} {
	data := map[string]interface{}{
		"title":       e.Title,
		"description": e.Description,
		"date":        e.Date,
		"time":        e.Time,
		"type":        e.Type,
		"color":       e.Color,
		"createdBy":   e.CreatedBy,
		"createdAt":   timestampOrNow(e.CreatedAt),
	}
	if e.Recurrence != "" {
		data["recurrence"] = e.Recurrence
	}
	return data
}

func toSettings(snap *fs.DocumentSnapshot) models.Settings {
	d := document(snap.Data())
	hours := d.object("openingHours")
	return models.Settings{
		ID:               snap.Ref.ID,
		KindergartenName: d.str("kindergartenName"),
		KindergartenLogo: d.optStr("kindergartenLogo"),
		Address:          d.str("address"),
		Phone:            d.str("phone"),
		Email:            d.str("email"),
		OpeningHours:     models.OpeningHours{Open: hours.str("open"), Close: hours.str("close")},
	}
}

func settingsData(s models.Settings) map[string]interface{} {
	return map[string]interface{}{
		"kindergartenName": s.KindergartenName,
		"kindergartenLogo": storeValue(s.KindergartenLogo),
		"address":          s.Address,
		"phone":            s.Phone,
		"email":            s.Email,
		"openingHours":     openingHoursData(s.OpeningHours),
	}
}

func openingHoursData(h models.OpeningHours) map[string]interface{} {
	return map[string]interface{}{"open": h.Open, "close": h.Close}
}

// timestampOrNow keeps an explicit timestamp (imports, backfills) and otherwise
// asks the server to assign one.
func timestampOrNow(ts *string) interface{} {
	if ts != nil {
		if t, err := time.Parse(time.RFC3339Nano, *ts); err == nil {
			return t
		}
	}
	return fs.ServerTimestamp
}
