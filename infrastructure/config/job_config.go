package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/a8m/envsubst"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexmorbo/build-hipchat-notifier/application/port"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// JobsFile is the YAML document that defines per-job notifier settings.
type JobsFile struct {
	Jobs map[string]JobConfig `yaml:"jobs" validate:"dive,keys,required,max=255,endkeys"`
}

// JobConfig mirrors the per-job form. Pointer fields distinguish "absent"
// (use the default) from an explicit value.
type JobConfig struct {
	Room            string             `yaml:"room"              validate:"max=100"`
	Token           string             `yaml:"token"             validate:"omitempty,printascii"`
	SuccessMessage  *string            `yaml:"success_message"`
	FailedMessage   *string            `yaml:"failed_message"`
	PostSuccess     *bool              `yaml:"post_success"`
	NotifySuccess   *bool              `yaml:"notify_success"`
	PostFailed      *bool              `yaml:"post_failed"`
	NotifyFailed    *bool              `yaml:"notify_failed"`
	MessageFromFile *MessageFileConfig `yaml:"message_from_file"`
}

type MessageFileConfig struct {
	Path string `yaml:"path" validate:"max=4096"`
}

func LoadJobsFile(path string) (*JobsFile, error) {
	path = filepath.Clean(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &JobsFile{Jobs: map[string]JobConfig{}}, nil
		}
		return nil, err
	}
	return ParseJobsFile(data)
}

func ParseJobsFile(data []byte) (*JobsFile, error) {
	var f JobsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse jobs file: %w", err)
	}
	if f.Jobs == nil {
		f.Jobs = map[string]JobConfig{}
	}

	// Credentials may reference the environment; templates are left alone
	// because they use the same ${NAME} syntax for build macros.
	for name, job := range f.Jobs {
		room, err := envsubst.StringRestricted(job.Room, true, false)
		if err != nil {
			return nil, fmt.Errorf("job %q room: %w", name, err)
		}
		token, err := envsubst.StringRestricted(job.Token, true, false)
		if err != nil {
			return nil, fmt.Errorf("job %q token: %w", name, err)
		}
		job.Room = room
		job.Token = token
		f.Jobs[name] = job
	}

	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("validate jobs file: %w", err)
	}

	return &f, nil
}

func (f *JobsFile) NotifierConfig(jobName string) (notification.NotifierConfig, error) {
	job, ok := f.Jobs[jobName]
	if !ok {
		return notification.NotifierConfig{}, fmt.Errorf("%w: %s", port.ErrJobNotConfigured, jobName)
	}
	return job.ToNotifierConfig(), nil
}

func (j JobConfig) ToNotifierConfig() notification.NotifierConfig {
	cfg := notification.DefaultNotifierConfig()
	cfg.Room = notification.NewOverride(j.Room)
	cfg.Token = notification.NewOverride(j.Token)

	if j.SuccessMessage != nil {
		cfg.SuccessTemplate = *j.SuccessMessage
	}
	if j.FailedMessage != nil {
		cfg.FailureTemplate = *j.FailedMessage
	}
	if j.PostSuccess != nil {
		cfg.PostOnSuccess = *j.PostSuccess
	}
	if j.NotifySuccess != nil {
		cfg.NotifyOnSuccess = *j.NotifySuccess
	}
	if j.PostFailed != nil {
		cfg.PostOnFailure = *j.PostFailed
	}
	if j.NotifyFailed != nil {
		cfg.NotifyOnFailure = *j.NotifyFailed
	}
	if j.MessageFromFile != nil {
		cfg.Source = notification.FileSource(j.MessageFromFile.Path)
	}

	return cfg
}
