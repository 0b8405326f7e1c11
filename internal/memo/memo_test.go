package memo_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/on-the-ground/isnumber/internal/memo"

	"github.com/stretchr/testify/assert"
)

func TestTable_BasicUsage(t *testing.T) {
	table := memo.New[string](4)

	table.Store("a", "first")

	val, ok := table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "first", val)

	_, ok = table.Load("b")
	assert.False(t, ok)

	// overwrite existing
	table.Store("a", "updated")
	val, ok = table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTable_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		memo.New[int](0)
	})
}

func TestTable_Rotation(t *testing.T) {
	table := memo.New[int](1)

	table.Store("a", 1)
	table.Store("b", 2) // rotates, "a" survives in the old generation
	v, ok := table.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	table.Store("c", 3) // rotates again, "a" is dropped
	_, ok = table.Load("a")
	assert.False(t, ok)

	v, ok = table.Load("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = table.Load("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestTable_Bounded(t *testing.T) {
	table := memo.New[int](64)
	for i := 0; i < 10_000; i++ {
		table.Store(fmt.Sprint(i), i)
	}
	assert.LessOrEqual(t, table.Len(), 2*64)
	assert.Greater(t, table.Len(), 0)
}

func TestTable_Concurrent(t *testing.T) {
	table := memo.New[int](32)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				key := fmt.Sprint(i % 50)
				table.Store(key, i%50)
				if v, ok := table.Load(key); ok {
					assert.Equal(t, i%50, v)
				}
			}
		}(g)
	}
	wg.Wait()
}

func TestTableize(t *testing.T) {
	count := 0
	fn := memo.Tableize(func(s string) int {
		count++
		return len(s)
	}, 8)

	assert.Equal(t, 3, fn("abc"))
	assert.Equal(t, 3, fn("abc")) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 0, fn(""))
	assert.Equal(t, 2, count)
}
