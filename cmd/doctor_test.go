package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorMode(t *testing.T) {
	cases := []struct {
		answer string
		want   string
	}{
		{"a", "gaming"},
		{"gaming", "gaming"},
		{"B", "ai"},
		{"cuda", "ai"},
		{"ml", "ai"},
		{"c", "streaming"},
		{"creator", "streaming"},
		{"d", "full"},
		{"", "full"},
		{"whatever", "full"},
		{"  a  ", "gaming"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, doctorMode(tc.answer), "answer %q", tc.answer)
	}
}

func TestDoctorWantsAllFormats(t *testing.T) {
	assert.True(t, doctorWantsAllFormats("b"))
	assert.True(t, doctorWantsAllFormats(" B "))
	assert.False(t, doctorWantsAllFormats("a"))
	assert.False(t, doctorWantsAllFormats(""))
}
