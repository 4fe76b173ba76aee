package client

import (
	"fmt"
	"net/url"
	"strings"
)

// urlBuilder assembles a request path relative to the base URL.
type urlBuilder struct {
	path  string
	query url.Values
}

func route(path string) *urlBuilder {
	return &urlBuilder{path: path, query: url.Values{}}
}

func (b *urlBuilder) setPathParam(name string, value any) *urlBuilder {
	b.path = strings.ReplaceAll(b.path, "{"+name+"}", url.PathEscape(fmt.Sprint(value)))
	return b
}

// addQueryParam adds the parameter unless value is the zero value of its type.
func (b *urlBuilder) addQueryParam(name string, value any) *urlBuilder {
	switch v := value.(type) {
	case string:
		if v == "" {
			return b
		}
	case int:
		if v == 0 {
			return b
		}
	case uint:
		if v == 0 {
			return b
		}
	}
	b.query.Add(name, fmt.Sprint(value))
	return b
}

func (b *urlBuilder) build() string {
	if len(b.query) == 0 {
		return b.path
	}
	return b.path + "?" + b.query.Encode()
}
