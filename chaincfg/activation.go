// Copyright (c) 2021-2022 The Bitcoin DX developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// vbParamsUpdate is a validated -vbparams value.
type vbParamsUpdate struct {
	deployment          int
	startTime           int64
	timeout             int64
	minActivationHeight int32
}

// parseSegwitHeight parses a -segwitheight value.  -1 disables segwit by
// moving its activation to the never height.
func parseSegwitHeight(s string) (int32, error) {
	height, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrSegwitHeightRange, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: -%s=%s", ErrInvalidSegwitHeight,
			ArgSegwitHeight, s)
	}
	if height < -1 || height >= math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrSegwitHeightRange, height)
	}
	if height == -1 {
		return math.MaxInt32, nil
	}
	return int32(height), nil
}

// parseVBParams parses a -vbparams value of the form
// deployment:start:end[:min_activation_height].
func parseVBParams(s string) (*vbParamsUpdate, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 3 || len(fields) > 4 {
		return nil, fmt.Errorf("%w: -%s=%s", ErrMalformedVBParams,
			ArgVBParams, s)
	}

	startTime, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidStartTime, fields[1])
	}
	timeout, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", ErrInvalidTimeout, fields[2])
	}
	var minHeight int64
	if len(fields) == 4 {
		minHeight, err = strconv.ParseInt(fields[3], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w (%s)",
				ErrInvalidMinActivationHeight, fields[3])
		}
		if minHeight < 0 {
			return nil, fmt.Errorf("%w (%s): must not be negative",
				ErrInvalidMinActivationHeight, fields[3])
		}
	}

	deployment, ok := lookupDeployment(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrUnknownDeployment, fields[0])
	}

	return &vbParamsUpdate{
		deployment:          deployment,
		startTime:           startTime,
		timeout:             timeout,
		minActivationHeight: int32(minHeight),
	}, nil
}

// updateActivationParams applies the -segwitheight and -vbparams overrides to
// the consensus parameters.  Every value is validated before any of them is
// applied so a bad override leaves the parameters untouched.
func updateActivationParams(c *ConsensusParams, args ArgSource) error {
	segwitHeight, haveSegwitHeight := lastArg(args, ArgSegwitHeight)

	var newSegwitHeight int32
	if haveSegwitHeight {
		var err error
		newSegwitHeight, err = parseSegwitHeight(segwitHeight)
		if err != nil {
			return err
		}
	}

	var updates []*vbParamsUpdate
	for _, s := range args.GetArgs(ArgVBParams) {
		u, err := parseVBParams(s)
		if err != nil {
			return err
		}
		updates = append(updates, u)
	}

	if haveSegwitHeight {
		if newSegwitHeight == math.MaxInt32 {
			log.Infof("Segwit disabled for testing")
		}
		c.SegwitHeight = newSegwitHeight
	}

	for _, u := range updates {
		d := &c.Deployments[u.deployment]
		d.StartTime = DeploymentTimeFromInt64(u.startTime)
		d.Timeout = DeploymentTimeFromInt64(u.timeout)
		d.MinActivationHeight = u.minActivationHeight

		log.Infof("Setting version bits activation parameters for %s to "+
			"start=%d, timeout=%d, min_activation_height=%d",
			DeploymentName(u.deployment), u.startTime, u.timeout,
			u.minActivationHeight)
	}

	return nil
}
