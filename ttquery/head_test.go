package ttquery

import (
	"testing"
	"time"

	"github.com/npillmayer/truetype/tt"
	"github.com/stretchr/testify/assert"
)

func TestLongDateTime(t *testing.T) {
	assert.Equal(t, time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC), LongDateTime(0))
	assert.Equal(t, time.Unix(0, 0).UTC(), LongDateTime(2082844800))
	assert.Equal(t, 2011, LongDateTime(3406620153).Year())
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "1.000", Fixed(0x00010000))
	assert.Equal(t, "1.500", Fixed(0x00018000))
	assert.Equal(t, "0.500", Fixed(0x00008000))
}

func TestStyleAndFlagNames(t *testing.T) {
	assert.Equal(t, []string{"regular"}, MacStyleNames(0))
	assert.Equal(t, []string{"bold", "italic"}, MacStyleNames(tt.MacStyle(0x03)))
	assert.Equal(t, []string{"extended"}, MacStyleNames(tt.MacStyle(0x40)))
	assert.Equal(t, []string{"baseline-at-y0", "lsb-at-x0"}, FlagNames(tt.HeadFlags(0x0003)))
	assert.Equal(t, []string{"integer-scaling", "cleartype"}, FlagNames(tt.HeadFlags(1<<3|1<<13)))
	assert.Empty(t, FlagNames(0))
}

func TestQueriesWithoutTables(t *testing.T) {
	_, ok := HeadInfo(nil)
	assert.False(t, ok)
	assert.Equal(t, FontMetricsInfo{}, FontMetrics(nil))
	_, ok = GlyphCount(nil)
	assert.False(t, ok)
	assert.Nil(t, UnicodeCMaps(nil))
	assert.Equal(t, "", FontType(nil))
}
