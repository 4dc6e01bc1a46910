// Package executor runs the quickreplace pipeline:
// load input → compile pattern → substitute → write output.
//
// Each stage either hands its result to the next or returns a
// *models.Failure tagged with the stage; later stages never run after a
// failure and nothing is retried.
package executor

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/harrison/quickreplace/internal/filelock"
	"github.com/harrison/quickreplace/internal/fileutil"
	"github.com/harrison/quickreplace/internal/logger"
	"github.com/harrison/quickreplace/internal/models"
	"github.com/harrison/quickreplace/internal/pattern"
)

// Pipeline performs one find-and-replace invocation.
type Pipeline struct {
	FS         billy.Filesystem
	Engine     pattern.Engine
	Logger     logger.Logger
	LockOutput bool        // hold a lock on the output's directory while writing
	FileMode   os.FileMode // mode for newly created output files
}

// NewPipeline creates a Pipeline with default file mode and no output locking.
// A nil log discards messages.
func NewPipeline(fsys billy.Filesystem, engine pattern.Engine, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Pipeline{
		FS:       fsys,
		Engine:   engine,
		Logger:   log,
		FileMode: fileutil.DefaultFileMode,
	}
}

// Run executes every stage for args in order.
// On success the output file holds exactly the substituted text.
func (p *Pipeline) Run(args models.Arguments) error {
	text, err := fileutil.LoadText(p.FS, args.Input)
	if err != nil {
		return models.NewReadError(args.Input, err)
	}
	p.Logger.LogDebug(fmt.Sprintf("read %d bytes from %s", len(text), args.Input))

	matcher, err := p.Engine.Compile(args.Target)
	if err != nil {
		return models.NewCompileError(args.Target, err)
	}

	if p.Logger.Enabled("debug") {
		p.Logger.LogDebug(fmt.Sprintf("pattern %q matched %d times", args.Target, matcher.Count(text)))
	}
	replaced := matcher.ReplaceAll(text, args.Replacement)

	if err := p.write(args.Output, replaced); err != nil {
		return models.NewWriteError(args.Output, err)
	}
	p.Logger.LogDebug(fmt.Sprintf("wrote %d bytes to %s", len(replaced), args.Output))

	return nil
}

func (p *Pipeline) write(path, text string) error {
	write := func() error {
		return fileutil.AtomicWrite(p.FS, path, []byte(text), p.FileMode)
	}

	if !p.LockOutput {
		return write()
	}

	p.Logger.LogTrace(fmt.Sprintf("locking directory of %s", path))
	return filelock.WithLock(path, func(dir string) {
		p.Logger.LogTrace(fmt.Sprintf("waiting for lock on %s", dir))
	}, write)
}
