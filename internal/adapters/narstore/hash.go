package narstore

import (
	"strings"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/zerr"
)

// Nix renders hashes in its own base32 alphabet, which omits e, o, u and t.
const nixBase32Alphabet = "0123456789abcdfghijklmnpqrsvwxyz"

// toNixBase32 encodes bytes the way nix renders hashes: 5-bit groups taken
// from the least significant bit upward, emitted in reverse order.
func toNixBase32(data []byte) string {
	length := (len(data)*8-1)/5 + 1
	out := make([]byte, length)

	for n := 0; n < length; n++ {
		b := n * 5
		i := b / 8
		j := b % 8

		v := data[i] >> uint(j)
		if i+1 < len(data) {
			v |= data[i+1] << uint(8-j)
		}
		out[length-n-1] = nixBase32Alphabet[v&0x1f]
	}

	return string(out)
}

// verifyFileHash compares a sha256 sum against the narinfo FileHash field
// ("sha256:<base32>"). An empty expectation passes; not every cache serves
// FileHash for uncompressed NARs.
func verifyFileHash(sum []byte, expected string) error {
	if expected == "" {
		return nil
	}
	actual := toNixBase32(sum)
	if actual != strings.TrimPrefix(expected, "sha256:") {
		mismatch := zerr.With(domain.ErrFetchFailed, "reason", "file hash mismatch")
		mismatch = zerr.With(mismatch, "expected", expected)
		return zerr.With(mismatch, "actual", "sha256:"+actual)
	}
	return nil
}
