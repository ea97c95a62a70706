package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCache(t *testing.T) {
	c := NewMapCache[[]int]()
	var _ Cache[[]int] = c

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("a", []int{1, 2})
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)
	assert.Equal(t, 1, c.Size())

	c.Delete("a")
	c.Delete("missing")
	assert.Equal(t, 0, c.Size())

	t.Run("Concurrent", func(t *testing.T) {
		c := NewMapCache[int]()
		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				k := strconv.Itoa(i)
				c.Put(k, i)
				got, ok := c.Get(k)
				assert.True(t, ok)
				assert.Equal(t, i, got)
			}()
		}
		wg.Wait()
		assert.Equal(t, 16, c.Size())
	})
}
