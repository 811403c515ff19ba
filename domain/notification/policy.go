package notification

import "github.com/alexmorbo/build-hipchat-notifier/domain/build"

func ShouldPost(r build.Result, cfg NotifierConfig) bool {
	return (r.IsBetterOrEqualTo(build.ResultSuccess) && cfg.PostOnSuccess) ||
		(r.IsWorseThan(build.ResultSuccess) && cfg.PostOnFailure)
}

func ShouldNotify(r build.Result, cfg NotifierConfig) bool {
	return (r.IsBetterOrEqualTo(build.ResultSuccess) && cfg.NotifyOnSuccess) ||
		(r.IsWorseThan(build.ResultSuccess) && cfg.NotifyOnFailure)
}

func SelectTemplate(r build.Result, cfg NotifierConfig) string {
	if r.IsBetterOrEqualTo(build.ResultSuccess) {
		return cfg.SuccessTemplate
	}
	return cfg.FailureTemplate
}
