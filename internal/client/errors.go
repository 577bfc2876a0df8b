// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errNoConfig        = errors.New("no config provided")
	errWebInRemoteMode = errors.New("web server cannot be started while the console uses a remote API")
)
