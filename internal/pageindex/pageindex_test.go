package pageindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func numbers(items []Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		if it.Kind == KindEllipsis {
			out = append(out, 0)
			continue
		}
		out = append(out, it.Number)
	}
	return out
}

func TestHref(t *testing.T) {
	assert.Equal(t, "/b/1?start=20", Href("/b/1", 20))
	assert.Equal(t, "/index.php?board=1&start=20", Href("/index.php?board=1", 20))
	assert.Equal(t, "/index.php?topic=7.40", Href("/index.php?topic=7.%d", 40))
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		total   int
		want    []int // 0 marks an ellipsis
		current int
	}{
		{"single page", 0, 5, []int{1}, 1},
		{"no items", 0, 0, []int{1}, 1},
		{"first of many", 0, 100, []int{1, 2, 3, 0, 10}, 1},
		{"middle", 50, 100, []int{1, 0, 4, 5, 6, 7, 8, 0, 10}, 6},
		{"near start", 20, 100, []int{1, 2, 3, 4, 5, 0, 10}, 3},
		{"last", 90, 100, []int{1, 0, 8, 9, 10}, 10},
		{"start past end clamps", 500, 100, []int{1, 0, 8, 9, 10}, 10},
		{"unaligned start rounds down", 57, 100, []int{1, 0, 4, 5, 6, 7, 8, 0, 10}, 6},
		{"negative start", -10, 30, []int{1, 2, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := Build("/b/1", tt.start, tt.total, 10, DefaultContiguous)
			assert.Equal(t, tt.want, numbers(idx.Items))
			assert.Equal(t, tt.current, idx.Current)
		})
	}
}

func TestBuild_PrevNext(t *testing.T) {
	idx := Build("/b/1", 10, 30, 10, DefaultContiguous)
	assert.True(t, idx.Multiple())
	assert.Equal(t, 3, idx.Total)
	assert.Equal(t, "/b/1?start=0", idx.PrevHref)
	assert.Equal(t, "/b/1?start=20", idx.NextHref)

	first := Build("/b/1", 0, 30, 10, DefaultContiguous)
	assert.Empty(t, first.PrevHref)

	single := Build("/b/1", 0, 3, 10, DefaultContiguous)
	assert.False(t, single.Multiple())
	assert.Empty(t, single.NextHref)
}

func TestTopicPages(t *testing.T) {
	assert.Nil(t, TopicPages("/t/1", 15, 15))
	assert.Equal(t, []int{1, 2}, numbers(TopicPages("/t/1", 16, 15)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers(TopicPages("/t/1", 75, 15)))
	items := TopicPages("/t/1", 200, 15)
	assert.Equal(t, []int{1, 2, 3, 0, 14}, numbers(items))
	assert.Equal(t, "/t/1?start=195", items[4].Href)
}
