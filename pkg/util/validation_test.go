package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"test@example.com", true},
		{"first.last+tag@mail-host.co.uk", true},
		{"a@b.c", true},
		{"a..b@example.com", true},
		{"invalid-email", false},
		{"no-domain@", false},
		{"@example.com", false},
		{"user@localhost", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidEmail(tc.in), "input %q", tc.in)
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2024-12-12", true},
		{"2024-02-29", true},
		{"2024-01-01", true},
		{"2024-12-32", false},
		{"2024-13-01", false},
		{"2023-02-29", false},
		{"2024-1-01", false},
		{"12-12-2024", false},
		{"2024/12/12", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidDate(tc.in), "input %q", tc.in)
	}
}
