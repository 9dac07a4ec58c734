package content

import "encoding/json"

// Profile holds the personal fields rendered on the contact section and used
// as the substitution source for placeholder tokens. Loaded once, read-only.
type Profile struct {
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CVFile    string `json:"cvFile"`
	GitHub    string `json:"github"`
	Website   string `json:"website"`
	Photo     string `json:"profile_photo"`
}

// ProfileFromDocument normalizes a parsed profile document into a typed
// record. A nil or non-object document yields the zero profile, which makes
// every dependent field simply not render.
func ProfileFromDocument(doc any) Profile {
	obj, ok := AsObject(doc)
	if !ok {
		return Profile{}
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return Profile{}
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}
	}
	return p
}

// Field looks up a profile value by token name. Both the JSON field names and
// their snake_case forms are accepted so content authors can use either.
func (p Profile) Field(key string) (string, bool) {
	switch key {
	case "fullName", "full_name":
		return p.FullName, true
	case "firstName", "first_name":
		return p.FirstName, true
	case "lastName", "last_name":
		return p.LastName, true
	case "email":
		return p.Email, true
	case "phone":
		return p.Phone, true
	case "cvFile", "cv_file":
		return p.CVFile, true
	case "github":
		return p.GitHub, true
	case "website":
		return p.Website, true
	case "profile_photo", "photo":
		return p.Photo, true
	}
	return "", false
}
