package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireproject/scylla-migrate/internal/model"
)

func TestFileDimensionsExtractsWidthAndHeight(t *testing.T) {
	width, height := fileDimensions([]byte(`{"width": 1920, "height": 1080, "orientation": 1}`))
	require.NotNil(t, width)
	require.NotNil(t, height)
	assert.Equal(t, int32(1920), *width)
	assert.Equal(t, int32(1080), *height)
}

func TestFileDimensionsMissingIsNil(t *testing.T) {
	width, height := fileDimensions(nil)
	assert.Nil(t, width)
	assert.Nil(t, height)

	width, height = fileDimensions([]byte(`{}`))
	assert.Nil(t, width)
	assert.Nil(t, height)
}

func TestResolveFilesPreservesRequestedOrder(t *testing.T) {
	files := []model.DriveFile{
		{ID: "f2", URL: "two"},
		{ID: "f1", URL: "one"},
	}
	out := resolveFiles(nil, files, []string{"f1", "f2", "f3-missing"})
	require.Len(t, out, 2)
	assert.Equal(t, "one", out[0].URL)
	assert.Equal(t, "two", out[1].URL)
}
