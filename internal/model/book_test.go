package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	list := StringList{"Fantasy", "Adventure"}

	val, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Fantasy","Adventure"]`, val)

	var scanned StringList
	require.NoError(t, scanned.Scan(val))
	assert.Equal(t, list, scanned)

	var empty StringList
	val, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
}

func TestStringListIntersects(t *testing.T) {
	list := StringList{"Fantasy", "Adventure"}

	assert.True(t, list.Contains("Fantasy"))
	assert.False(t, list.Contains("fantasy"))

	assert.True(t, list.Intersects([]string{"Horror", "Adventure"}))
	assert.False(t, list.Intersects([]string{"Horror"}))
	assert.False(t, list.Intersects(nil))
}

func TestAllElementsFlattensInPageOrder(t *testing.T) {
	book := &Book{
		Pages: []Page{
			{Position: 0, Elements: []InteractiveElement{
				{UUIDBase: UUIDBase{ID: "a"}},
				{UUIDBase: UUIDBase{ID: "b"}},
			}},
			{Position: 1, Elements: []InteractiveElement{
				{UUIDBase: UUIDBase{ID: "c"}},
			}},
			{Position: 2},
		},
	}

	elements := book.AllElements()
	require.Len(t, elements, 3)
	assert.Equal(t, "a", elements[0].ID)
	assert.Equal(t, "c", elements[2].ID)
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, ValidRole("learner"))
	assert.True(t, ValidRole("administrator"))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))

	assert.True(t, ValidReadingLevel("Beginner"))
	assert.False(t, ValidReadingLevel("beginner"))

	assert.True(t, ValidElementKind("Quiz"))
	assert.False(t, ValidElementKind("quiz"))
}
