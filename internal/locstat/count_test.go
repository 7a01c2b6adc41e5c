package locstat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	t.Run("counts_code_and_empty_lines", func(t *testing.T) {
		stats := Count([]byte("a\nb\n\n"))
		assert.Equal(t, LineStats{Code: 2, Empty: 1}, stats)
		assert.Equal(t, int64(3), stats.Total())
	})

	t.Run("no_content_means_no_lines", func(t *testing.T) {
		assert.Equal(t, LineStats{}, Count(nil))
		assert.Equal(t, LineStats{}, Count([]byte{}))
	})

	t.Run("final_line_without_newline_is_counted", func(t *testing.T) {
		assert.Equal(t, LineStats{Code: 1}, Count([]byte("hello")))
	})

	t.Run("trailing_newline_does_not_open_a_line", func(t *testing.T) {
		assert.Equal(t, LineStats{Code: 1}, Count([]byte("hello\n")))
	})

	t.Run("single_newline_is_one_empty_line", func(t *testing.T) {
		assert.Equal(t, LineStats{Empty: 1}, Count([]byte("\n")))
	})

	t.Run("whitespace_only_lines_are_empty", func(t *testing.T) {
		assert.Equal(t, LineStats{Code: 1, Empty: 2}, Count([]byte("  \t\nx \n\t\n")))
	})

	t.Run("crlf_endings_do_not_leak_into_counts", func(t *testing.T) {
		assert.Equal(t, LineStats{Code: 2, Empty: 1}, Count([]byte("a\r\n\r\nb\r\n")))
	})
}

func TestLineStatsAdd(t *testing.T) {
	var total LineStats
	total.Add(LineStats{Code: 3, Empty: 1})
	total.Add(LineStats{Code: 2, Empty: 4})

	assert.Equal(t, LineStats{Code: 5, Empty: 5}, total)
}

func TestLineStatsPercentEmpty(t *testing.T) {
	t.Run("formats_to_known_value", func(t *testing.T) {
		stats := LineStats{Code: 172, Empty: 21}
		assert.Equal(t, "10.88", fmt.Sprintf("%.2f", stats.PercentEmpty()))
	})

	t.Run("zero_lines_is_zero_percent", func(t *testing.T) {
		assert.Zero(t, LineStats{}.PercentEmpty())
	})

	t.Run("all_lines_empty_is_one_hundred_percent", func(t *testing.T) {
		assert.Equal(t, 100.0, LineStats{Empty: 5}.PercentEmpty())
	})
}
