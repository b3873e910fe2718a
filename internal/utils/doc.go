// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the node and the client:
// account address formatting, JSON responses, the resty client used by the
// adapters and request id generation.
package utils
