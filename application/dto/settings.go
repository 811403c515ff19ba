package dto

import (
	"strings"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

// SettingsInput replaces the global settings. An empty server or token keeps
// the stored value; ClearToken removes the stored token.
type SettingsInput struct {
	Server     string `json:"server"`
	Token      string `json:"token"`
	Room       string `json:"room"`
	ClearToken bool   `json:"clear_token"`
}

func (in SettingsInput) ToGlobalConfig() notification.GlobalConfig {
	return notification.GlobalConfig{
		Server: strings.TrimSpace(in.Server),
		Token:  strings.TrimSpace(in.Token),
		Room:   strings.TrimSpace(in.Room),
	}
}

type SettingsOutput struct {
	Server   string `json:"server"`
	Room     string `json:"room"`
	TokenSet bool   `json:"token_set"`
	Token    string `json:"token,omitempty"`
}

// NewSettingsOutput never exposes the token itself, only its last four
// characters.
func NewSettingsOutput(cfg notification.GlobalConfig) SettingsOutput {
	return SettingsOutput{
		Server:   cfg.Server,
		Room:     cfg.Room,
		TokenSet: cfg.Token != "",
		Token:    maskToken(cfg.Token),
	}
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}

type DefaultsOutput struct {
	MessageTemplate string `json:"message_template"`
	PostOnSuccess   bool   `json:"post_on_success"`
	NotifyOnSuccess bool   `json:"notify_on_success"`
	PostOnFailure   bool   `json:"post_on_failure"`
	NotifyOnFailure bool   `json:"notify_on_failure"`
}

func NewDefaultsOutput() DefaultsOutput {
	d := notification.DefaultNotifierConfig()
	return DefaultsOutput{
		MessageTemplate: notification.DefaultMessageTemplate,
		PostOnSuccess:   d.PostOnSuccess,
		NotifyOnSuccess: d.NotifyOnSuccess,
		PostOnFailure:   d.PostOnFailure,
		NotifyOnFailure: d.NotifyOnFailure,
	}
}
