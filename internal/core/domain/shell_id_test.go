package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shelf/internal/core/domain"
)

func TestGenerateShellID_Deterministic(t *testing.T) {
	shell := opensslSpec(t).DevShell()

	first := domain.GenerateShellID(shell)
	for range 20 {
		assert.Equal(t, first, domain.GenerateShellID(shell))
	}
	assert.Len(t, first, 64)
}

func TestGenerateShellID_ListSeparation(t *testing.T) {
	spec := opensslSpec(t)
	original := domain.GenerateShellID(spec.DevShell())

	// The same refs in swapped lists describe a different shell.
	swapped := domain.DependencySpec{
		Name:              spec.Name,
		BuildInputs:       spec.NativeBuildInputs,
		NativeBuildInputs: spec.BuildInputs,
	}
	assert.NotEqual(t, original, domain.GenerateShellID(swapped.DevShell()))
}

func TestGenerateShellID_NameSensitive(t *testing.T) {
	spec := opensslSpec(t)
	renamed := spec
	renamed.Name = domain.NewInternedString("libressl")

	assert.NotEqual(t,
		domain.GenerateShellID(spec.DevShell()),
		domain.GenerateShellID(renamed.DevShell()))
}
