package cmd

import (
	"os"
	"os/exec"
	"strings"

	"github.com/ringo-is-a-color/exithook/util/errors"
)

func Run(name string, arg ...string) (string, error) {
	return RunWithEnv(nil, name, arg...)
}

// RunWithEnv runs the command with env appended to the current environment and
// returns its standard output. The output is returned even when the command
// exits with a non-zero code.
func RunWithEnv(env []string, name string, arg ...string) (string, error) {
	cmd, builder := exec.Command(name, arg...), new(strings.Builder)
	cmd.Stdout = builder
	cmd.Env = append(os.Environ(), env...)
	err := cmd.Run()
	if err != nil {
		return builder.String(), errors.WithStack(err)
	}
	return builder.String(), nil
}

// ExitCode returns the exit code carried by an error of Run or RunWithEnv.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
