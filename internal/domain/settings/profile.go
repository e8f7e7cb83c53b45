package settings

import "errors"

// DefaultAPIURL is the classifier endpoint used until the user
// configures another one.
const DefaultAPIURL = "http://localhost:5001"

var (
	ErrEmptyAPIURL = errors.New("l'URL de l'API ne peut pas être vide")
)

// Profile is the per-session user profile: the classifier endpoint and
// the optional display name used for personalization. Stored values are
// merged over defaults on load.
type Profile struct {
	APIURL string `json:"apiUrl"`
	UserID string `json:"userId"`
}

// DefaultProfile returns the profile applied to sessions that never
// saved settings.
func DefaultProfile() Profile {
	return Profile{
		APIURL: DefaultAPIURL,
		UserID: "",
	}
}

// Validate checks the invariants enforced on save
func (p Profile) Validate() error {
	if p.APIURL == "" {
		return ErrEmptyAPIURL
	}
	return nil
}
