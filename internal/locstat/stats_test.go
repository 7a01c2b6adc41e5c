package locstat

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("merges_concurrent_results", func(t *testing.T) {
		coll := newCollector(true)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					coll.add("go", LineStats{Code: 2, Empty: 1}, 10)
				}
			}()
		}
		wg.Wait()

		report := coll.finalize()
		assert.Equal(t, LineStats{Code: 1600, Empty: 800}, report.Types["go"])
		assert.Equal(t, int64(800), report.Files)
		assert.Equal(t, int64(8000), report.Bytes)
	})

	t.Run("combined_mode_reports_a_single_bucket", func(t *testing.T) {
		coll := newCollector(false)
		coll.add(KeyAll, LineStats{Code: 1}, 1)

		report := coll.finalize()
		require.Len(t, report.Types, 1)
		assert.Contains(t, report.Types, KeyAll)
		assert.False(t, report.PerType)
	})

	t.Run("combined_mode_reports_zeros_for_no_files", func(t *testing.T) {
		coll := newCollector(false)

		report := coll.finalize()
		require.Contains(t, report.Types, KeyAll)
		assert.Equal(t, LineStats{}, report.Types[KeyAll])
	})

	t.Run("per_type_mode_reports_no_buckets_for_no_files", func(t *testing.T) {
		coll := newCollector(true)

		report := coll.finalize()
		assert.Empty(t, report.Types)
		assert.True(t, report.PerType)
	})

	t.Run("counts_skipped_entries", func(t *testing.T) {
		coll := newCollector(false)
		coll.addSkipped()
		coll.addSkipped()

		report := coll.finalize()
		assert.Equal(t, int64(2), report.Skipped)
	})
}

func TestMergeIsOrderIndependent(t *testing.T) {
	parts := []LineStats{
		{Code: 5, Empty: 1},
		{Code: 0, Empty: 7},
		{Code: 12, Empty: 0},
		{Code: 3, Empty: 3},
	}

	var forward LineStats
	for _, part := range parts {
		forward.Add(part)
	}

	shuffled := append([]LineStats(nil), parts...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	var merged LineStats
	for _, part := range shuffled {
		merged.Add(part)
	}

	assert.Equal(t, forward, merged)
}

func TestReportKeys(t *testing.T) {
	report := &Report{Types: map[string]LineStats{"rs": {}, "go": {}, KeyNoExt: {}}}

	assert.Equal(t, []string{KeyNoExt, "go", "rs"}, report.Keys())
}

func TestReportTotal(t *testing.T) {
	report := &Report{Types: map[string]LineStats{
		"go": {Code: 10, Empty: 2},
		"rs": {Code: 5, Empty: 3},
	}}

	assert.Equal(t, LineStats{Code: 15, Empty: 5}, report.Total())
}
