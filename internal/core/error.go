package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrBrokenLinks  = errors.New("broken links found")
)

// ErrorData feeds the error page template. Message is shown only in dev.
type ErrorData struct {
	Status  int
	Title   string
	Message string
	IsDev   bool
}

func NewErrorData(status int, err error, isDev bool) ErrorData {
	data := ErrorData{
		Status: status,
		Title:  http.StatusText(status),
		IsDev:  isDev,
	}
	if err != nil {
		data.Message = err.Error()
	}
	return data
}

// LinkPolicy decides what a broken link does at export time.
type LinkPolicy string

const (
	LinkIgnore LinkPolicy = "ignore"
	LinkWarn   LinkPolicy = "warn"
	LinkThrow  LinkPolicy = "throw"
)

func ParseLinkPolicy(s string) (LinkPolicy, error) {
	switch LinkPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case LinkIgnore, "":
		return LinkIgnore, nil
	case LinkWarn, "log":
		return LinkWarn, nil
	case LinkThrow:
		return LinkThrow, nil
	default:
		return LinkIgnore, fmt.Errorf("invalid link policy %q: want ignore, warn or throw", s)
	}
}

// BrokenLink is an internal reference that resolves to no page or asset.
type BrokenLink struct {
	Source   string
	Target   string
	Markdown bool
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("%s -> %s", b.Source, b.Target)
}
