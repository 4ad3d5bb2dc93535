package manager

import (
	sigar "github.com/cloudfoundry/gosigar"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

//counterfeiter:generate . ProcessLister

type ProcessLister interface {
	ProcessNames() ([]string, error)
}

type sigarProcessLister struct{}

func NewProcessLister() ProcessLister {
	return sigarProcessLister{}
}

func (sigarProcessLister) ProcessNames() ([]string, error) {
	pids := sigar.ProcList{}
	if err := pids.Get(); err != nil {
		return nil, bosherr.WrapError(err, "Listing processes")
	}

	names := make([]string, 0, len(pids.List))
	for _, pid := range pids.List {
		state := sigar.ProcState{}
		// processes can exit between listing and inspection
		if err := state.Get(pid); err != nil {
			continue
		}
		names = append(names, state.Name)
	}

	return names, nil
}

// ProcessRunning reports whether any process has the given name.
func ProcessRunning(lister ProcessLister, name string) (bool, error) {
	names, err := lister.ProcessNames()
	if err != nil {
		return false, err
	}

	for _, n := range names {
		if n == name {
			return true, nil
		}
	}

	return false, nil
}
