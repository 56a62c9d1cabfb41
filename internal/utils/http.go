package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/MKhiriev/buy-from-me/models"
)

// ErrTrailingJSON is returned by DecodeJSON when the body holds more than one
// JSON value.
var ErrTrailingJSON = errors.New("unexpected data after JSON object")

// WriteJSON serializes data to JSON and writes it with statusCode and an
// "application/json" content type.
//
// If marshaling fails the client gets a plain 500 and the wrapped error is
// returned so the caller can log it.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess writes data wrapped into the success envelope with 200 OK:
//
//	{"status": "success", "data": ...}
func WriteSuccess(w http.ResponseWriter, data any) (int, error) {
	return WriteJSON(w, models.NewSuccessResponse(data), http.StatusOK)
}

// WriteHTML renders tmpl with data and writes the page with statusCode.
// The template is executed into a buffer first, so on error nothing has been
// sent and the caller is still free to answer with a JSON error.
func WriteHTML(w http.ResponseWriter, tmpl *template.Template, data any, statusCode int) (int, error) {
	var page bytes.Buffer
	if err := tmpl.Execute(&page, data); err != nil {
		return 0, fmt.Errorf("error rendering %s: %w", tmpl.Name(), err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(page.Bytes())
}

// DecodeJSON decodes exactly one JSON value from body into dst. Unknown
// fields are ignored.
func DecodeJSON(body io.Reader, dst any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(dst); err != nil {
		return err
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingJSON
	}

	return nil
}
