package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"temporary-dns/dns/manager"
	"temporary-dns/dns/metrics"
	"temporary-dns/dns/override"
	"temporary-dns/dns/request"
)

// requestWithOverride fetches rawURL while servers override the active
// interface, then reverts. A session that never touched an interface reports
// the DNS settings as unchanged.
func requestWithOverride(
	ctx context.Context,
	overrider *override.Overrider,
	requestRunner *request.Runner,
	recorder *metrics.Recorder,
	servers manager.ServerList,
	rawURL string,
	stdout io.Writer,
	logger boshlog.Logger,
) (exitCode int) {
	logTag := "main"

	fmt.Fprintf(stdout, "Requesting %s with DNS %s\n", rawURL, servers)

	session, err := overrider.Open(servers)
	recorder.ObserveOverride("open", err)
	defer func() {
		// Open may already have reverted after a failed apply.
		_ = session.Revert()

		if session.NoOp() {
			fmt.Fprintln(stdout, "DNS Settings Unchanged")
			return
		}

		revertErr := session.RevertErr()
		recorder.ObserveOverride("revert", revertErr)
		if revertErr != nil {
			logger.Error(logTag, "Reverting session %s, DNS may still be overridden: %s", session.ID(), revertErr.Error())
			exitCode = 1
			return
		}
		fmt.Fprintln(stdout, "DNS Settings Reverted")
	}()

	if err != nil {
		var selectionFailure *override.SelectionFailure
		if !errors.As(err, &selectionFailure) {
			logger.Error(logTag, err.Error())
			return 1
		}
		logger.Warn(logTag, "%s, requesting without an override", err.Error())
	}

	response, err := requestRunner.Get(ctx, rawURL)
	if err != nil {
		var statusErr request.StatusError
		if errors.As(err, &statusErr) {
			fmt.Fprintln(stdout, statusErr.Error())
		} else {
			logger.Error(logTag, err.Error())
		}
		return 1
	}

	fmt.Fprintln(stdout, string(response.Body))

	return 0
}
