package truetype

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/truetype/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseFontFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype")
	defer teardown()
	//
	f, err := ParseFont(goregular.TTF)
	require.NoError(t, err)
	family, subfamily := FamilyName(f)
	assert.Equal(t, "Go", family)
	assert.Equal(t, "Regular", subfamily)
}

func TestParseFontSelectedTables(t *testing.T) {
	f, err := ParseFont(goregular.TTF, tt.Head)
	require.NoError(t, err)
	assert.Equal(t, []tt.TableTag{tt.Head}, f.DecodedTags())
	family, _ := FamilyName(f)
	assert.Equal(t, "", family, "expected no family without decoded name table")
}

func TestLoadFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "truetype")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "Go-Mono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0o644))
	f, err := LoadFont(path)
	require.NoError(t, err)
	family, _ := FamilyName(f)
	assert.Equal(t, "Go Mono", family)
	//
	require.NoError(t, os.WriteFile(path, gomono.TTF[:20], 0o644))
	_, err = LoadFont(path)
	assert.True(t, errors.Is(err, tt.ErrMalformedLength), "expected truncated font to fail, have %v", err)
}
