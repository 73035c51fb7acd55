package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give Color
		want string
	}{
		{
			desc: "opaque black",
			give: Color{A: 0xFF},
			want: "#000000",
		},
		{
			desc: "opaque",
			give: Color{R: 0x12, G: 0x34, B: 0x56, A: 0xFF},
			want: "#123456",
		},
		{
			desc: "translucent",
			give: Color{R: 0x01, G: 0x02, B: 0x03, A: 0x04},
			want: "#01020304",
		},
		{
			desc: "fully transparent",
			give: Color{R: 0xFF, G: 0xFF},
			want: "#ffff0000",
		},
		{
			desc: "zero value",
			give: Color{},
			want: "#00000000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.give.CSS())
		})
	}
}

func TestColorDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#000000", DefaultForeground.CSS())
	assert.Equal(t, "#ffffff", DefaultBackground.CSS())

	// The line highlight fallback is yellow with a zero alpha
	// channel. Odd, but pinned: callers observe the exact string.
	assert.Equal(t, "#ffff0000", DefaultLineHighlight.CSS())
}
