package backend

import (
	"dentflow-service/internal/app/models"
	"dentflow-service/internal/pkg/exceptions"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var messagePaths = []string{"message", "detail", "error", "msg", "non_field_errors.0"}

// ErrorMessage pulls a human readable message out of a backend error body.
// Field errors such as {"email":["taken"]} become "email: taken".
func ErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}
	doc := gjson.ParseBytes(body)
	for _, path := range messagePaths {
		if value := doc.Get(path); value.Type == gjson.String && value.String() != "" {
			return value.String()
		}
	}

	var fieldErrors []string
	doc.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.IsArray() && len(value.Array()) > 0:
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s: %s", key.String(), value.Array()[0].String()))
		case value.Type == gjson.String:
			fieldErrors = append(fieldErrors, fmt.Sprintf("%s: %s", key.String(), value.String()))
		}
		return true
	})
	sort.Strings(fieldErrors)
	return strings.Join(fieldErrors, "; ")
}

// DecodePage accepts a bare array or an object whose list lives under
// "data", "results" or one of the extra keys.
func DecodePage[T any](body []byte, resource string, listKeys ...string) (*models.Page[T], error) {
	if !gjson.ValidBytes(body) {
		return nil, exceptions.ErrDecodeResponse(fmt.Errorf("invalid json"), resource)
	}
	doc := gjson.ParseBytes(body)

	list := gjson.Result{}
	switch {
	case doc.IsArray():
		list = doc
	case doc.IsObject():
		for _, key := range append([]string{"data", "results"}, listKeys...) {
			if candidate := doc.Get(key); candidate.IsArray() {
				list = candidate
				break
			}
		}
	}

	page := &models.Page[T]{Items: []T{}}
	if list.Exists() {
		if err := json.Unmarshal([]byte(list.Raw), &page.Items); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, resource)
		}
	}

	page.Total = len(page.Items)
	for _, key := range []string{"total", "count"} {
		if total := doc.Get(key); total.Type == gjson.Number {
			page.Total = int(total.Int())
			break
		}
	}
	page.Page = 1
	if current := doc.Get("page"); current.Type == gjson.Number {
		page.Page = int(current.Int())
	}

	return page, nil
}

// DecodeObject decodes a single resource, unwrapping {"data": {...}}.
func DecodeObject[T any](body []byte, resource string) (*T, error) {
	if !gjson.ValidBytes(body) {
		return nil, exceptions.ErrDecodeResponse(fmt.Errorf("invalid json"), resource)
	}
	raw := body
	if data := gjson.GetBytes(body, "data"); data.IsObject() {
		raw = []byte(data.Raw)
	}

	out := new(T)
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}
	return out, nil
}
