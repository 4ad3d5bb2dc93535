package cmdrunner

import (
	"time"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

//counterfeiter:generate . Process

type Process interface {
	Wait() <-chan boshsys.Result
	TerminateNicely(killGracePeriod time.Duration) error
}

//counterfeiter:generate . ProcessStarter

type ProcessStarter interface {
	Start(name string, args ...string) (Process, error)
}

type processStarter struct {
	cmdRunner boshsys.CmdRunner
}

// NewProcessStarter runs commands through the bosh-utils runner as an argument
// vector. Nothing is interpreted by a shell.
func NewProcessStarter(cmdRunner boshsys.CmdRunner) ProcessStarter {
	return processStarter{cmdRunner: cmdRunner}
}

func (s processStarter) Start(name string, args ...string) (Process, error) {
	process, err := s.cmdRunner.RunComplexCommandAsync(boshsys.Command{
		Name: name,
		Args: args,
	})
	if err != nil {
		return nil, err
	}

	return process, nil
}
