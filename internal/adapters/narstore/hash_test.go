package narstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shelf/internal/adapters/narstore"
)

func TestToNixBase32(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "single zero byte", input: []byte{0x00}, want: "00"},
		{name: "single full byte", input: []byte{0xff}, want: "7z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, narstore.ToNixBase32(tt.input))
		})
	}
}

func TestToNixBase32_Sha256Width(t *testing.T) {
	// A sha256 sum renders as 52 characters, same as nix hash output.
	sum := make([]byte, 32)
	for i := range sum {
		sum[i] = byte(i * 7)
	}

	encoded := narstore.ToNixBase32(sum)
	assert.Len(t, encoded, 52)
	for _, c := range encoded {
		assert.True(t, strings.ContainsRune("0123456789abcdfghijklmnpqrsvwxyz", c))
	}
}
