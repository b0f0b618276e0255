package session

import (
	"dentflow-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var tokenPaths = []string{"access_token", "token", "access"}

// Normalize turns any of the stored "current user" shapes into a Session:
//
//	{access_token, user:{role, clinic, ...}}
//	{access_token, role, first_name, ..., clinic}
//	{token|access, user:{user:{role, ...}}}
//
// It returns nil when the blob is not JSON or carries no token or no role.
func Normalize(raw []byte) *models.Session {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return nil
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil
	}

	token := ""
	for _, path := range tokenPaths {
		if value := doc.Get(path); value.Type == gjson.String && value.String() != "" {
			token = value.String()
			break
		}
	}
	if token == "" {
		return nil
	}

	var profile gjson.Result
	switch {
	case nonEmptyString(doc.Get("user.role")):
		profile = doc.Get("user")
	case nonEmptyString(doc.Get("role")):
		profile = doc
	case nonEmptyString(doc.Get("user.user.role")):
		profile = doc.Get("user.user")
	default:
		return nil
	}

	// ids are sometimes numeric, so fields are read one by one
	user := models.User{
		ID:        profile.Get("id").String(),
		Role:      profile.Get("role").String(),
		FirstName: profile.Get("first_name").String(),
		LastName:  profile.Get("last_name").String(),
		Email:     profile.Get("email").String(),
	}

	session := &models.Session{AccessToken: token, User: user}

	topLevelClinic := doc.Get("clinic")
	if topLevelClinic.Exists() && profile.Raw != doc.Raw {
		session.Clinic = json.RawMessage(topLevelClinic.Raw)
	}
	if userClinic := profile.Get("clinic"); userClinic.Exists() && userClinic.Type != gjson.Null {
		session.User.Clinic = json.RawMessage(userClinic.Raw)
	} else if topLevelClinic.Exists() && topLevelClinic.Type != gjson.Null {
		session.User.Clinic = json.RawMessage(topLevelClinic.Raw)
	}

	return session
}

func nonEmptyString(value gjson.Result) bool {
	return value.Type == gjson.String && value.String() != ""
}
