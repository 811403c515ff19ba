package composer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexmorbo/build-hipchat-notifier/application/port"
	"github.com/alexmorbo/build-hipchat-notifier/domain/build"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

// Message files larger than this fall back to the template.
const maxMessageFileBytes = 1 << 20

var ErrMessageFileTooLarge = errors.New("message file too large")

type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// Compose builds the message body. A file source that cannot be read falls
// back to the template for the build's result; the read error is returned
// in the composition for the caller to log.
func (c *Composer) Compose(ctx context.Context, cfg notification.NotifierConfig, bctx *build.Context) port.Composition {
	if cfg.Source.IsFile() {
		body, err := readMessageFile(ctx, bctx.WorkspaceRoot(), cfg.Source.Path())
		if err == nil {
			return port.Composition{Body: body, Source: port.CompositionFile}
		}
		return port.Composition{
			Body:    c.expand(cfg, bctx),
			Source:  port.CompositionFallback,
			ReadErr: err,
		}
	}

	return port.Composition{Body: c.expand(cfg, bctx), Source: port.CompositionTemplate}
}

func (c *Composer) expand(cfg notification.NotifierConfig, bctx *build.Context) string {
	tmpl := notification.SelectTemplate(bctx.Result(), cfg)
	return Expand(tmpl, Variables(bctx))
}

// readMessageFile returns the file's lines joined without separators. An
// empty relative path is not looked up and yields an empty message. ctx is
// checked before every line.
func readMessageFile(ctx context.Context, workspaceRoot, relativePath string) (string, error) {
	if relativePath == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := workspaceRoot + "/" + relativePath
	f, err := os.Open(path) //nolint:gosec // path is a workspace artifact chosen by the job owner
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxMessageFileBytes)

	var (
		body strings.Builder
		read int
	)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line := scanner.Bytes()
		read += len(line)
		if read > maxMessageFileBytes {
			return "", fmt.Errorf("read %s: %w", path, ErrMessageFileTooLarge)
		}
		body.WriteString(strings.ReplaceAll(string(line), "\r", ""))
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("read %s: %w", path, ErrMessageFileTooLarge)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return body.String(), nil
}
