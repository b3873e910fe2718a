// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request of the client.
const UserAgent = "art-vault-client"

const (
	readRetryCount   = 2
	readRetryWait    = 200 * time.Millisecond
	readRetryMaxWait = time.Second
)

// HTTPClient embeds *resty.Client so the adapters can use its request
// builder directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. A non-positive timeout
// leaves resty's default in place.
//
// Reads (GET) that fail on the transport level are retried. Uploads are
// never retried since their multipart readers are consumed by the first
// attempt.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(readRetryCount).
		SetRetryWaitTime(readRetryWait).
		SetRetryMaxWaitTime(readRetryMaxWait).
		AddRetryCondition(retryReads)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

func retryReads(resp *resty.Response, err error) bool {
	if err == nil || resp == nil || resp.Request == nil {
		return false
	}
	return resp.Request.Method == http.MethodGet
}
