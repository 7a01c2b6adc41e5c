package locstat

import "bytes"

// Count computes line statistics for one file's contents. Lines are
// separated by '\n'; a trailing newline terminates the final line instead of
// opening an empty one. A line counts as empty when trimming whitespace
// leaves nothing, which also absorbs the '\r' of CRLF files.
func Count(data []byte) LineStats {
	var stats LineStats

	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i]
			data = data[i+1:]
		} else {
			data = nil
		}

		if len(bytes.TrimSpace(line)) == 0 {
			stats.Empty++
		} else {
			stats.Code++
		}
	}

	return stats
}
