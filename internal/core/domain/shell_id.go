package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GenerateShellID creates a deterministic identifier for a dev shell from its
// declared inputs. Equal shells hash equally across processes, which makes the
// ID usable as an environment cache key.
func GenerateShellID(shell DevShell) string {
	var builder strings.Builder
	builder.WriteString(shell.Name.String())
	builder.WriteString("\n")
	// Separate the two lists so moving a ref between them changes the ID.
	builder.WriteString("buildInputs:")
	for _, ref := range shell.BuildInputs {
		builder.WriteString(ref.String())
		builder.WriteString(";")
	}
	builder.WriteString("\nnativeBuildInputs:")
	for _, ref := range shell.NativeBuildInputs {
		builder.WriteString(ref.String())
		builder.WriteString(";")
	}

	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
