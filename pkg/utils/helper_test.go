package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))

	empty := map[string]struct{}{}
	assert.Empty(t, SortedKeys(empty))

	sets := map[string]struct{}{".xmp": {}, ".jpg": {}}
	assert.Equal(t, []string{".jpg", ".xmp"}, SortedKeys(sets))
}
