// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path/filepath"
	"strings"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every JSON endpoint answers with on success.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// NewSuccessResponse wraps data into a success envelope.
func NewSuccessResponse(data any) Response {
	return Response{Status: StatusSuccess, Data: data}
}

// ErrorResponse is the envelope returned for caller-visible failures.
type ErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// NewErrorResponse builds an error envelope carrying detail.
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Detail: detail}
}

// UploadResponse is returned by the image upload endpoints.
type UploadResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
}

// ImageUpload is an image received from a client, before validation.
type ImageUpload struct {
	// Filename is the client-supplied name. Only its extension is used.
	Filename string
	Content  []byte
}

// Extension returns the lower-cased extension of Filename without the dot.
func (u ImageUpload) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(u.Filename), "."))
}
