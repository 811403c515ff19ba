package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

func TestSettingsInputToGlobalConfig(t *testing.T) {
	in := SettingsInput{Server: " api.hipchat.com ", Token: "abc\n", Room: "ops"}

	assert.Equal(t, notification.GlobalConfig{
		Server: "api.hipchat.com",
		Token:  "abc",
		Room:   "ops",
	}, in.ToGlobalConfig())
}

func TestNewSettingsOutputMasksToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
		set      bool
	}{
		{name: "empty token", token: "", expected: "", set: false},
		{name: "short token", token: "abc", expected: "***", set: true},
		{name: "long token", token: "secret-token-1234", expected: "*************1234", set: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewSettingsOutput(notification.GlobalConfig{Server: "s", Room: "r", Token: tt.token})
			assert.Equal(t, tt.expected, out.Token)
			assert.Equal(t, tt.set, out.TokenSet)
			assert.Equal(t, "s", out.Server)
			assert.Equal(t, "r", out.Room)
		})
	}
}

func TestNewDefaultsOutput(t *testing.T) {
	out := NewDefaultsOutput()

	assert.Equal(t, "${JOB_NAME} #${BUILD_NUMBER} (${BUILD_RESULT}) ${BUILD_URL}", out.MessageTemplate)
	assert.True(t, out.PostOnSuccess)
	assert.True(t, out.NotifyOnSuccess)
	assert.True(t, out.PostOnFailure)
	assert.True(t, out.NotifyOnFailure)
}

func TestNotifyOutputLog(t *testing.T) {
	var out NotifyOutput
	out.Log("HipChat Post   : true")
	out.Log("HipChat Notify : false")

	assert.Equal(t, []string{"HipChat Post   : true", "HipChat Notify : false"}, out.LogLines)
}
