package dto

// SettingsRequest updates the session profile
type SettingsRequest struct {
	APIURL string `json:"apiUrl" binding:"required"`
	UserID string `json:"userId"`
}

// SettingsResponse returns the stored profile and, on save, the bot's
// confirmation message.
type SettingsResponse struct {
	APIURL  string `json:"apiUrl"`
	UserID  string `json:"userId"`
	Message string `json:"message,omitempty"`
}
