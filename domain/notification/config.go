package notification

const DefaultMessageTemplate = "${JOB_NAME} #${BUILD_NUMBER} (${BUILD_RESULT}) ${BUILD_URL}"

// NotifierConfig holds the per-job notification settings.
type NotifierConfig struct {
	Room            Override
	Token           Override
	SuccessTemplate string
	FailureTemplate string
	PostOnSuccess   bool
	NotifyOnSuccess bool
	PostOnFailure   bool
	NotifyOnFailure bool
	Source          MessageSource
}

// DefaultNotifierConfig mirrors the defaults offered for a new job: default
// template for both outcomes, every post/notify flag enabled.
func DefaultNotifierConfig() NotifierConfig {
	return NotifierConfig{
		SuccessTemplate: DefaultMessageTemplate,
		FailureTemplate: DefaultMessageTemplate,
		PostOnSuccess:   true,
		NotifyOnSuccess: true,
		PostOnFailure:   true,
		NotifyOnFailure: true,
		Source:          TemplateSource(),
	}
}

// GlobalConfig holds the process-wide chat defaults.
type GlobalConfig struct {
	Server string
	Token  string
	Room   string
}
