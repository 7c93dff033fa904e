// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package http

import (
	"bytes"
	"net/http"
)

// responseWriter is a thin decorator around [http.ResponseWriter] that
// forwards all writes while recording the status code and body size. It is
// used by withLogging to observe the response after the downstream handler
// has returned, without buffering the body.
//
// WriteHeader is forwarded to the underlying writer exactly once; subsequent
// calls are silently ignored, mirroring the behaviour documented by the
// [http.ResponseWriter] interface.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// captureWriter buffers the entire response instead of forwarding it, so
// withEncryption can replace the plaintext body with an envelope after the
// downstream handler returns. Headers set by the handler still reach the
// underlying writer through the embedded Header map.
type captureWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *captureWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

// Status returns the recorded status code, defaulting to 200 when the
// handler never called WriteHeader.
func (w *captureWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
