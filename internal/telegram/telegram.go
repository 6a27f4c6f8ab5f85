// Package telegram holds the chat-platform payload shapes the mini-app
// frontend forwards with each submission. The service does not verify
// initData; the submitter identity is advisory.
package telegram

import "strconv"

// UnknownUserID is stored when the submission carries no user identity.
const UnknownUserID = "unknown"

// User is the Telegram WebApp user object as sent by the frontend.
type User struct {
	ID              int64  `json:"id"`
	IsBot           bool   `json:"is_bot,omitempty"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name,omitempty"`
	Username        string `json:"username,omitempty"`
	LanguageCode    string `json:"language_code,omitempty"`
	AllowsWriteToPM bool   `json:"allows_write_to_pm,omitempty"`
	PhotoURL        string `json:"photo_url,omitempty"`
}

// SubmissionContext is the telegramData half of a create-order request.
type SubmissionContext struct {
	User     *User  `json:"user,omitempty"`
	InitData string `json:"initData,omitempty"`
}

// UserID returns the submitter id as a string, or UnknownUserID when the
// context carries no user.
func (c *SubmissionContext) UserID() string {
	if c == nil || c.User == nil || c.User.ID == 0 {
		return UnknownUserID
	}
	return strconv.FormatInt(c.User.ID, 10)
}
