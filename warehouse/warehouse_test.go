package warehouse

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinAccessors(t *testing.T) {
	b := NewBin("A-01", 100)
	b.Stock().Put("mug", 3)
	b.Stock().Put("cup", 2)
	b.Pending().Add("plate")
	b.Tags().Add("fragile")

	assert.Equal(t, "A-01", string(b.Code()[:4]))
	assert.Equal(t, uint32(100), b.Capacity())
	assert.Equal(t, 5, b.Held())
	assert.Equal(t, 1, b.Pending().Size())
	assert.True(t, b.Tags().Contains("fragile"))

	b.ClearStock()
	b.ClearPending()
	b.ClearTags()
	b.ClearCode()
	b.ClearCapacity()

	assert.Zero(t, b.Held())
	assert.True(t, b.Pending().Empty())
	assert.True(t, b.Tags().Empty())
	assert.Equal(t, make([]byte, 8), b.Code())
	assert.Zero(t, b.Capacity())
}

func TestBinNilContainersClear(t *testing.T) {
	b := &Bin{}
	b.ClearStock()
	b.ClearTags()
	b.ClearLabels()

	assert.Nil(t, b.Stock())
	assert.Nil(t, b.Labels())
}

func TestBinLabelsAreCopied(t *testing.T) {
	b := NewBin("A-02", 1)
	b.SetLabels(map[string]string{"zone": "cold"})

	labels := b.Labels()
	labels["zone"] = "dry"

	assert.Equal(t, "cold", b.Labels()["zone"])

	b.ClearLabels()
	assert.Empty(t, b.Labels())
}

func TestBinOptionals(t *testing.T) {
	b := NewBin("A-03", 1)
	assert.Nil(t, b.LastAudit())
	assert.Nil(t, b.Note())

	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	b.SetLastAudit(at).SetNote(sql.Null[string]{V: "recount", Valid: true})

	require.NotNil(t, b.LastAudit())
	assert.Equal(t, at, *b.LastAudit())
	require.NotNil(t, b.Note())
	assert.Equal(t, "recount", *b.Note())

	b.ClearLastAudit()
	b.ClearNote()
	assert.Nil(t, b.LastAudit())
	assert.Nil(t, b.Note())
}

func TestSlotReplaceReturnsPrevious(t *testing.T) {
	var s Slot[string, int]

	assert.Empty(t, s.SetKey("a"))
	assert.Zero(t, s.SetValue(1))
	assert.Equal(t, 1, s.SetValue(2))
	assert.Equal(t, "a", *s.Key())
	assert.Equal(t, 2, *s.Value())

	hist := []int{1, 2}
	s.SetHistory(hist...)
	hist[0] = 9
	assert.Equal(t, []int{1, 2}, s.History())
}
