package build

import (
	"fmt"
	"maps"
	"strings"
)

// Context is the read-only snapshot of build metadata supplied by the host.
type Context struct {
	jobName       string
	number        int
	result        Result
	url           string
	workspaceRoot string
	env           map[string]string
}

func NewContext(jobName string, number int, result Result, url, workspaceRoot string, env map[string]string) (*Context, error) {
	if strings.TrimSpace(jobName) == "" {
		return nil, fmt.Errorf("%w: empty job name", ErrInvalidContext)
	}
	if number < 0 {
		return nil, fmt.Errorf("%w: negative build number %d", ErrInvalidContext, number)
	}
	if result.IsZero() {
		return nil, fmt.Errorf("%w: missing result", ErrInvalidContext)
	}
	return &Context{
		jobName:       jobName,
		number:        number,
		result:        result,
		url:           url,
		workspaceRoot: workspaceRoot,
		env:           maps.Clone(env),
	}, nil
}

func (c *Context) JobName() string       { return c.jobName }
func (c *Context) Number() int           { return c.number }
func (c *Context) Result() Result        { return c.result }
func (c *Context) URL() string           { return c.url }
func (c *Context) WorkspaceRoot() string { return c.workspaceRoot }

// Env returns a copy of the extra build variables (parameters, node name, ...).
func (c *Context) Env() map[string]string {
	if c.env == nil {
		return map[string]string{}
	}
	return maps.Clone(c.env)
}
