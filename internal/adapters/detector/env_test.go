package detector_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vtrg/internal/adapters/detector"
)

func TestIsCI(t *testing.T) {
	tests := []struct {
		name     string
		ciValue  string
		expected bool
	}{
		{name: "CI=true", ciValue: "true", expected: true},
		{name: "CI=1", ciValue: "1", expected: true},
		{name: "CI=false", ciValue: "false", expected: false},
		{name: "unset", ciValue: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)
			assert.Equal(t, tt.expected, detector.IsCI())
		})
	}
}

func TestDetectMode_NonFileWriter(t *testing.T) {
	t.Setenv("CI", "")
	assert.Equal(t, detector.ModePlain, detector.DetectMode(&bytes.Buffer{}))
}

func TestDetectMode_RegularFile(t *testing.T) {
	t.Setenv("CI", "")

	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, detector.ModePlain, detector.DetectMode(f))
}

func TestDetectMode_CIForcesPlain(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModePlain, detector.DetectMode(os.Stderr))
}
