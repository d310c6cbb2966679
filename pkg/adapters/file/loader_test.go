package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seatwise/auctioneer/pkg/adapters/file"
)

func TestLoader_Load(t *testing.T) {
	system, err := file.NewLoader("testdata/kokish.yaml").Load()
	require.NoError(t, err)

	assert.Equal(t, "kokish", system.Name)
	require.Len(t, system.Openings, 2)
	assert.Equal(t, "1N", system.Openings[0].Call.String())
	assert.Equal(t, "2N", system.Openings[1].Call.String())

	responses := system.Openings[1].Responses
	require.Len(t, responses, 1)
	assert.Equal(t, "3N", responses[0].Call.String())
	assert.Equal(t, "confi", responses[0].Handoff)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := file.NewLoader("testdata/nope.yaml").Load()
	assert.Error(t, err)
}

func TestLoader_NoOpenings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: empty\nopenings: []\n"), 0o644))

	_, err := file.NewLoader(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no openings")
}

func TestLoader_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openings: {not: a list}\n"), 0o644))

	_, err := file.NewLoader(path).Load()
	assert.Error(t, err)
}
