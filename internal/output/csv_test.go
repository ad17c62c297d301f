package output_test

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"serptally/internal/output"
	"serptally/internal/serp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestAppender(t *testing.T) {
	t.Run("writes rows without a header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		a, err := output.NewAppender(path)
		require.NoError(t, err)

		require.NoError(t, a.Append("best coffee", serp.Tally{"example.com": 2}))
		require.NoError(t, a.Close())

		rows := readRows(t, path)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"best coffee", "example.com", "2"}, rows[0])
	})

	t.Run("one row per hostname", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		a, err := output.NewAppender(path)
		require.NoError(t, err)

		require.NoError(t, a.Append("best coffee", serp.Tally{"a.test": 3, "b.test": 1}))
		require.NoError(t, a.Close())

		rows := readRows(t, path)
		assert.Len(t, rows, 2)
	})

	t.Run("reopening accumulates rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")

		for i := 0; i < 2; i++ {
			a, err := output.NewAppender(path)
			require.NoError(t, err)
			require.NoError(t, a.Append("term", serp.Tally{"example.com": 1}))
			require.NoError(t, a.Close())
		}

		assert.Len(t, readRows(t, path), 2)
	})

	t.Run("concurrent appends never interleave", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		a, err := output.NewAppender(path)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				term := fmt.Sprintf("term-%02d", i)
				assert.NoError(t, a.Append(term, serp.Tally{"example.com": 1}))
			}(i)
		}
		wg.Wait()
		require.NoError(t, a.Close())

		rows := readRows(t, path)
		require.Len(t, rows, 10)
		for _, row := range rows {
			assert.Len(t, row, 3)
		}
	})
}
