package models

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	UsernameMinLength = 3
	PasswordMinLength = 3
)

// optional scheme, optional www., at least one dot-separated host segment
var urlPattern = regexp.MustCompile(`^(https?://)?(www\.)?[\w\-]+(\.[\w\-]+)+[/#?]?.*$`)

// ValidationError lists field-level problems. It unwraps to ErrInvalidData.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func IsValidURL(s string) bool {
	return urlPattern.MatchString(s)
}

func (p Post) Validate() error {
	verr := &ValidationError{}

	if strings.TrimSpace(p.Title) == "" {
		verr.add("title", "title is required")
	}

	switch {
	case strings.TrimSpace(p.URL) == "":
		verr.add("url", "url is required")
	case !IsValidURL(p.URL):
		verr.add("url", fmt.Sprintf("%s is not a valid url", p.URL))
	}

	if p.Likes < 0 {
		verr.add("likes", "likes must not be negative")
	}

	return verr.orNil()
}

// Apply returns a copy of p with the non-nil fields of u set. ID and owner are untouched.
func (u PostUpdate) Apply(p Post) Post {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Author != nil {
		p.Author = *u.Author
	}
	if u.URL != nil {
		p.URL = *u.URL
	}
	if u.Likes != nil {
		p.Likes = *u.Likes
	}
	return p
}

func ValidateRegistration(username, password string) error {
	verr := &ValidationError{}

	switch {
	case username == "":
		verr.add("username", "username is required")
	case utf8.RuneCountInString(username) < UsernameMinLength:
		verr.add("username", fmt.Sprintf("username must be at least %d characters long", UsernameMinLength))
	}

	switch {
	case password == "":
		verr.add("password", "password is required")
	case utf8.RuneCountInString(password) < PasswordMinLength:
		verr.add("password", fmt.Sprintf("password must be at least %d characters long", PasswordMinLength))
	}

	return verr.orNil()
}
