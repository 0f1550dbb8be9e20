package caplist

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// CommandSink pipes the share payload to an external command's stdin, e.g.
// a notification tool as the primary channel or wl-copy/pbcopy/xclip as the
// clipboard channel. Cancelling ctx kills the command.
type CommandSink struct {
	SinkName string
	Argv     []string
}

// NewCommandSink creates a sink for the given argv. Returns nil when argv is
// empty so an unconfigured channel simply drops out of the chain.
func NewCommandSink(name string, argv []string) *CommandSink {
	if len(argv) == 0 {
		return nil
	}
	return &CommandSink{SinkName: name, Argv: argv}
}

func (s *CommandSink) Name() string { return s.SinkName }

// Deliver runs the command with the payload on stdin.
func (s *CommandSink) Deliver(ctx context.Context, title, text string) error {
	cmd := exec.CommandContext(ctx, s.Argv[0], s.Argv[1:]...)
	cmd.Stdin = strings.NewReader(title + "\n\n" + text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w (%s)", s.SinkName, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// FileSink writes the payload to a file under the data dir. It is the
// last-resort clipboard stand-in on headless installs and cannot be
// cancelled, so it makes a dependable fallback.
type FileSink struct {
	fs   afero.Fs
	path string
}

// NewFileSink creates a file sink writing to dataDir.
func NewFileSink(fs afero.Fs, dataDir string) *FileSink {
	return &FileSink{fs: fs, path: filepath.Join(dataDir, "cap_list_share.txt")}
}

func (s *FileSink) Name() string { return "file" }

// Deliver writes the payload.
func (s *FileSink) Deliver(ctx context.Context, title, text string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("file sink: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("file sink: %w", err)
	}
	return nil
}
