package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches both wrapped and marked errors.
func Is(err, reference error) bool {
	return errors.Is(err, reference) || cr.Is(err, reference)
}

// ReasonOf returns the message of err without the text of its root cause.
func ReasonOf(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if root := cr.UnwrapAll(err).Error(); root != msg {
		msg = strings.TrimSuffix(msg, ": "+root)
	}
	return msg
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
