package composer

import (
	"regexp"
	"strconv"

	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
)

const (
	VarJobName          = "JOB_NAME"
	VarBuildNumber      = "BUILD_NUMBER"
	VarBuildID          = "BUILD_ID"
	VarBuildDisplayName = "BUILD_DISPLAY_NAME"
	VarBuildResult      = "BUILD_RESULT"
	VarBuildURL         = "BUILD_URL"
	VarWorkspace        = "WORKSPACE"
)

// Matches ${NAME} and $NAME.
var macroPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Expand substitutes known macros in template. Unknown macros and anything
// that does not parse as a macro are kept as written.
func Expand(template string, vars map[string]string) string {
	if template == "" {
		return ""
	}
	return macroPattern.ReplaceAllStringFunc(template, func(token string) string {
		sub := macroPattern.FindStringSubmatch(token)
		name := sub[1]
		if name == "" {
			name = sub[2]
		}
		if value, ok := vars[name]; ok {
			return value
		}
		return token
	})
}

// Variables returns the macro bindings for a build. Host-supplied variables
// are included, but never shadow the build's own fields.
func Variables(bctx *build.Context) map[string]string {
	vars := bctx.Env()

	number := strconv.Itoa(bctx.Number())
	vars[VarJobName] = bctx.JobName()
	vars[VarBuildNumber] = number
	vars[VarBuildID] = number
	vars[VarBuildDisplayName] = "#" + number
	vars[VarBuildResult] = bctx.Result().String()
	vars[VarBuildURL] = bctx.URL()
	if bctx.WorkspaceRoot() != "" {
		vars[VarWorkspace] = bctx.WorkspaceRoot()
	}
	return vars
}
