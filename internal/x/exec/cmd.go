// Copyright (c) 2017-present SIGHUP s.r.l All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package execx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
)

const (
	exitCodeGeneric  = 1
	exitCodeNotFound = 127
)

var (
	Debug        = false  //nolint:gochecknoglobals // This variable is shared between all the command instances.
	LogFile      *os.File //nolint:gochecknoglobals // This variable is shared between all the command instances.
	ErrCmdFailed = errors.New("command failed")
)

func NewErrCmdFailed(name string, args []string, err error, res *CmdLog) error {
	return fmt.Errorf("%s %s: %w - %v\n%s", name, strings.Join(args, " "), ErrCmdFailed, err, res)
}

func NewCmd(name string, opts CmdOptions) *Cmd {
	outLog := bytes.NewBufferString("")
	errLog := bytes.NewBufferString("")

	outWriters := []io.Writer{outLog}
	errWriters := []io.Writer{errLog}

	if LogFile != nil {
		outWriters = append(outWriters, LogFile)
		errWriters = append(errWriters, LogFile)
	}

	if opts.Executor == nil {
		opts.Executor = NewStdExecutor()
	}

	if opts.Out != nil {
		outWriters = append(outWriters, opts.Out)
	}

	if opts.Err != nil {
		errWriters = append(errWriters, opts.Err)
	}

	// Stdout belongs to the generated script, tool output is mirrored on stderr only.
	if Debug {
		outWriters = append(outWriters, os.Stderr)
		errWriters = append(errWriters, os.Stderr)
	}

	coreCmd := opts.Executor.Command(name, opts.Args...)
	coreCmd.Stdout = io.MultiWriter(outWriters...)
	coreCmd.Stderr = io.MultiWriter(errWriters...)
	coreCmd.Dir = opts.WorkDir

	return &Cmd{
		Cmd: coreCmd,
		Log: &CmdLog{
			Out: outLog,
			Err: errLog,
		},
	}
}

type Cmd struct {
	*exec.Cmd
	Log *CmdLog
}

func (c *Cmd) Run() error {
	if err := c.Cmd.Run(); err != nil {
		return NewErrCmdFailed(c.Path, c.Args, err, c.Log)
	}

	return nil
}

type CmdOptions struct {
	Args     []string
	Err      io.Writer
	Executor Executor
	Out      io.Writer
	WorkDir  string
}

type CmdLog struct {
	Out *bytes.Buffer
	Err *bytes.Buffer
}

func (c CmdLog) String() string {
	return fmt.Sprintf("out: %s\nerr: %s\n", c.Out, c.Err)
}

// Result is the outcome of a finished command. A non-zero ExitCode is not an
// error by itself: callers decide what a failure means for them.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (r Result) Succeeded() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// Output runs the command and collects its streams and exit code.
func Output(cmd *Cmd) Result {
	err := cmd.Cmd.Run()

	res := Result{
		Stdout: cmd.Log.Out.String(),
		Stderr: cmd.Log.Err.String(),
	}

	if err == nil {
		return res
	}

	res.Err = NewErrCmdFailed(cmd.Path, cmd.Args, err, cmd.Log)
	res.ExitCode = exitCode(err)

	return res
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() > 0 {
			return exitErr.ExitCode()
		}

		return exitCodeGeneric
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) {
		return exitCodeNotFound
	}

	return exitCodeGeneric
}

// Tokens flattens strings, string slices and nested slices into a single
// argument list, splitting every string on whitespace.
func Tokens(parts ...any) []string {
	tokens := make([]string, 0, len(parts))

	for _, part := range parts {
		switch v := part.(type) {
		case string:
			tokens = append(tokens, strings.Fields(v)...)

		case []string:
			for _, s := range v {
				tokens = append(tokens, strings.Fields(s)...)
			}

		case []any:
			tokens = append(tokens, Tokens(v...)...)

		case nil:

		default:
			tokens = append(tokens, strings.Fields(fmt.Sprint(v))...)
		}
	}

	return tokens
}

func CombinedOutput(cmd *Cmd) (string, error) {
	err := cmd.Run()

	trimOut := strings.Trim(cmd.Log.Out.String(), "\n")
	trimErr := strings.Trim(cmd.Log.Err.String(), "\n")

	return strings.Trim(trimOut+"\n"+trimErr, "\n"), err
}
