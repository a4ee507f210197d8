package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone_SameSubscriber(t *testing.T) {
	t.Parallel()

	const want = "5491112345678"
	inputs := []string{
		"11 1234-5678",
		"+54 9 11 1234 5678",
		"9 11 1234 5678",
		"54 11 1234 5678",
		"011 1234-5678",
		"5491112345678",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, want, NormalizePhone(input))
		})
	}
}

func TestNormalizePhone_MobileMarkerWithoutCountryCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5491123456789", NormalizePhone("91123456789"))
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"11 1234-5678", "+54 9 351 555-1234", "91123456789", "2614001122"} {
		once := NormalizePhone(input)
		assert.Equal(t, once, NormalizePhone(once), input)
		assert.Equal(t, 1, countPrefix(once), input)
	}
}

func TestNormalizePhone_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NormalizePhone(""))
	assert.Empty(t, NormalizePhone("sin número"))
}

func TestValidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		valid bool
	}{
		{input: "11 1234-5678", valid: true},
		{input: "+54 9 351 555-1234", valid: true},
		{input: "1234", valid: false},
		{input: "", valid: false},
		{input: "11 1234 5678 9012 3456", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, ValidPhone(tt.input))
		})
	}
}

func countPrefix(number string) int {
	count := 0
	for len(number) >= len(PhonePrefix) && number[:len(PhonePrefix)] == PhonePrefix {
		count++
		number = number[len(PhonePrefix):]
	}

	return count
}
