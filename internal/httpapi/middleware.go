package httpapi

import (
	"log"
	"net/http"
	"time"
)

// responseMeta captures status and payload size for the access log.
type responseMeta struct {
	http.ResponseWriter
	status  int
	written int
}

func (m *responseMeta) WriteHeader(code int) {
	if m.status == 0 {
		m.status = code
	}
	m.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the hijackable writer
// underneath, which the metrics websocket upgrade needs.
func (m *responseMeta) Unwrap() http.ResponseWriter {
	return m.ResponseWriter
}

func (m *responseMeta) Write(p []byte) (int, error) {
	if m.status == 0 {
		m.status = http.StatusOK
	}
	n, err := m.ResponseWriter.Write(p)
	m.written += n
	return n, err
}

func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		meta := &responseMeta{ResponseWriter: w}
		next.ServeHTTP(meta, r)
		status := meta.status
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s -> %d (%dB, %s)", r.Method, r.URL.Path, status, meta.written, time.Since(started))
	})
}
