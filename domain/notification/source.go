package notification

type sourceKind int

const (
	sourceTemplate sourceKind = iota
	sourceFile
)

// MessageSource selects how a message body is produced: by expanding the
// result template, or by reading a file from the build workspace.
type MessageSource struct {
	kind sourceKind
	path string
}

func TemplateSource() MessageSource {
	return MessageSource{kind: sourceTemplate}
}

// FileSource reads the body from path, relative to the workspace root.
// An empty path yields an empty body.
func FileSource(path string) MessageSource {
	return MessageSource{kind: sourceFile, path: path}
}

func (s MessageSource) IsFile() bool { return s.kind == sourceFile }
func (s MessageSource) Path() string { return s.path }

func (s MessageSource) String() string {
	if s.IsFile() {
		return "file:" + s.path
	}
	return "template"
}
