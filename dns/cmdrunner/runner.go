package cmdrunner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Runner

type Runner interface {
	Run(name string, args ...string) (Result, error)
}

//counterfeiter:generate . Observer

type Observer interface {
	ObserveCommand(name string, duration time.Duration, err error)
}

var ErrTimeout = errors.New("command timed out")

type Result struct {
	ExitStatus int
	Stdout     string
	Stderr     string
}

type ExitError struct {
	Command string
	Result  Result
}

func (e *ExitError) Error() string {
	stderr := strings.TrimSpace(e.Result.Stderr)
	if stderr == "" {
		return fmt.Sprintf("Command '%s' exited with %d", e.Command, e.Result.ExitStatus)
	}
	return fmt.Sprintf("Command '%s' exited with %d: %s", e.Command, e.Result.ExitStatus, stderr)
}

// TimeoutError is returned when a command outlives the runner's timeout. It
// unwraps to ErrTimeout.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Running '%s' (timeout %s): %s", e.Command, e.Timeout, ErrTimeout)
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

type TimeoutRunner struct {
	starter         ProcessStarter
	clock           clock.Clock
	timeout         time.Duration
	killGracePeriod time.Duration
	observer        Observer

	logger boshlog.Logger
	logTag string
}

func NewRunner(starter ProcessStarter, clock clock.Clock, timeout, killGracePeriod time.Duration, logger boshlog.Logger) *TimeoutRunner {
	return &TimeoutRunner{
		starter:         starter,
		clock:           clock,
		timeout:         timeout,
		killGracePeriod: killGracePeriod,
		logger:          logger,
		logTag:          "CommandRunner",
	}
}

func (r *TimeoutRunner) WithObserver(observer Observer) *TimeoutRunner {
	r.observer = observer
	return r
}

func (r *TimeoutRunner) Run(name string, args ...string) (Result, error) {
	command := strings.Join(append([]string{name}, args...), " ")
	started := r.clock.Now()

	result, err := r.run(command, name, args)

	if r.observer != nil {
		r.observer.ObserveCommand(name, r.clock.Since(started), err)
	}

	return result, err
}

func (r *TimeoutRunner) run(command, name string, args []string) (Result, error) {
	r.logger.Debug(r.logTag, "Running '%s'", command)

	process, err := r.starter.Start(name, args...)
	if err != nil {
		return Result{ExitStatus: -1}, bosherr.WrapErrorf(err, "Starting '%s'", command)
	}

	timer := r.clock.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case processResult := <-process.Wait():
		result := Result{
			ExitStatus: processResult.ExitStatus,
			Stdout:     processResult.Stdout,
			Stderr:     processResult.Stderr,
		}

		if result.ExitStatus != 0 {
			return result, &ExitError{Command: command, Result: result}
		}

		if processResult.Error != nil {
			return result, bosherr.WrapErrorf(processResult.Error, "Running '%s'", command)
		}

		return result, nil

	case <-timer.C():
		r.logger.Warn(r.logTag, "Command '%s' did not finish within %s, terminating it", command, r.timeout)

		if err := process.TerminateNicely(r.killGracePeriod); err != nil {
			r.logger.Error(r.logTag, "Terminating '%s': %s", command, err.Error())
		}

		return Result{ExitStatus: -1}, &TimeoutError{Command: command, Timeout: r.timeout}
	}
}
