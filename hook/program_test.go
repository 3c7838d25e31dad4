package hook

import (
	"os"
	"runtime"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ringo-is-a-color/exithook/util/cmd"
	"github.com/ringo-is-a-color/exithook/util/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetProgramHooks(t *testing.T) {
	programHooks.Lock()
	programHooks.registrations = nil
	programHooks.Unlock()
	t.Cleanup(func() {
		programHooks.Lock()
		programHooks.registrations = nil
		programHooks.Unlock()
	})
}

func runHelper(t *testing.T, mode string) (string, int) {
	output, err := cmd.RunWithEnv([]string{helperModeEnv + "=" + mode}, os.Args[0], "-test.run=^$")
	return output, cmd.ExitCode(err)
}

func TestRegisterProgramExitRunsOnce(t *testing.T) {
	resetProgramHooks(t)
	count := 0
	r := RegisterProgramExit(func() { count++ })
	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.True(t, r.Dispatcher().HasHandler())

	RunProgramExitHooks()
	RunProgramExitHooks()
	r.run()
	assert.Equal(t, 1, count)
}

func TestRegisterProgramExitOnAnyGoroutine(t *testing.T) {
	resetProgramHooks(t)
	logger := &recordingLogger{}
	called := false
	RegisterProgramExit(func() { called = true }, WithLogger(logger), WithPrimaryCheck(func() bool { return false }))
	RunProgramExitHooks()
	assert.True(t, called)
	assert.Empty(t, logger.messages)
}

func TestRegisterProgramExitWithoutHandler(t *testing.T) {
	resetProgramHooks(t)
	logger := &recordingLogger{}
	RegisterProgramExit(nil, WithLogger(logger), WithPrimaryCheck(func() bool { return true }))
	RunProgramExitHooks()
	assert.Equal(t, []string{"Program is exiting"}, logger.messages)
}

func TestProgramExitHooksRunInReverseOrder(t *testing.T) {
	resetProgramHooks(t)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		RegisterProgramExit(func() { order = append(order, i) })
	}
	RunProgramExitHooks()
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestProgramExitHookPanicDoesNotStopOthers(t *testing.T) {
	resetProgramHooks(t)
	var order []string
	RegisterProgramExit(func() { order = append(order, "first") })
	RegisterProgramExit(func() { panic("second") })
	RegisterProgramExit(func() { order = append(order, "third") })
	assert.NotPanics(t, RunProgramExitHooks)
	assert.Equal(t, []string{"third", "first"}, order)
}

func TestCancel(t *testing.T) {
	resetProgramHooks(t)
	called := false
	r := RegisterProgramExit(func() { called = true })
	require.Nil(t, r.Cancel())

	err := r.Cancel()
	assert.True(t, errors.Is(err, ErrAlreadyCancelled))

	RunProgramExitHooks()
	assert.False(t, called)
}

func TestCancelAfterRun(t *testing.T) {
	resetProgramHooks(t)
	r := RegisterProgramExit(func() {})
	RunProgramExitHooks()
	err := r.Cancel()
	assert.True(t, errors.Is(err, ErrAlreadyRun))
}

func TestProgramExitEndToEnd(t *testing.T) {
	output, code := runHelper(t, "program-exit")
	assert.Equal(t, 0, code)
	assert.Equal(t, "main body\nprogram exit handler\n", output)
}

func TestProgramExitOrderEndToEnd(t *testing.T) {
	output, code := runHelper(t, "program-exit-order")
	assert.Equal(t, 3, code)
	assert.Equal(t, "third\nfirst\n", output)
}

func TestMainGoroutineEndToEnd(t *testing.T) {
	output, code := runHelper(t, "main-goroutine")
	assert.Equal(t, 0, code)
	assert.Equal(t, "true\nfunction handler\nthread handler\nthread handler\nProgram is exiting\n", output)
}

func TestTerminationSignalEndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("signals cannot be sent to a process on Windows")
	}
	output, code := runHelper(t, "signal")
	assert.Equal(t, 143, code)
	assert.Equal(t, "main body\nprogram exit handler\n", output)
}

func TestCancelRacingRun(t *testing.T) {
	for n := 0; n < 1000; n++ {
		resetProgramHooks(t)
		called := false
		r := RegisterProgramExit(func() { called = true })
		var cancelErr error
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			cancelErr = r.Cancel()
		}()
		go func() {
			defer wg.Done()
			r.run()
		}()
		wg.Wait()
		if called {
			require.True(t, errors.Is(cancelErr, ErrAlreadyRun))
		} else {
			require.Nil(t, cancelErr)
		}
	}
}
