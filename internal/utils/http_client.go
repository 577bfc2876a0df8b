// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	httpClientRetryCount   = 2
	httpClientRetryWait    = 200 * time.Millisecond
	httpClientRetryMaxWait = 2 * time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON client rooted at baseURL. Every request is
// bounded by timeout (zero means no limit) and transport failures are
// retried a couple of times.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8080", 10*time.Second)
//	resp, err := client.R().Get("/api/notes")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(httpClientRetryCount).
		SetRetryWaitTime(httpClientRetryWait).
		SetRetryMaxWaitTime(httpClientRetryMaxWait)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
