package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"olá", Portuguese},
		{"Oi, tudo bem?", Portuguese},
		{"o que o futuro reserva pra mim", Portuguese},
		{"coração", Portuguese}, // diacritics alone
		{"hello there", English},
		{"what does my future hold?", English},
		{"shuffle the cards please", English},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.text))
		})
	}
}

func TestResolveCachesFirstAssignment(t *testing.T) {
	t.Parallel()
	d := NewDetector()

	assert.Equal(t, Portuguese, d.Resolve("u1", "olá"))
	// Later English text does not flip the assignment.
	assert.Equal(t, Portuguese, d.Resolve("u1", "hello, in english now"))

	// Other users are independent.
	assert.Equal(t, English, d.Resolve("u2", "hello"))
	assert.Equal(t, English, d.Resolve("u2", "olá"))
}
