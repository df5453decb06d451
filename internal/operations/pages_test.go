package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		name      string
		pageRange string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{name: "empty selects whole document", pageRange: "", wantStart: 1, wantEnd: 0},
		{name: "single page", pageRange: "5", wantStart: 5, wantEnd: 5},
		{name: "range", pageRange: "1-10", wantStart: 1, wantEnd: 10},
		{name: "range with spaces", pageRange: "2 - 4", wantStart: 2, wantEnd: 4},
		{name: "too many parts", pageRange: "1-2-3", wantErr: true},
		{name: "not a number", pageRange: "abc", wantErr: true},
		{name: "bad end", pageRange: "3-x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParsePageRange(tt.pageRange)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid page range format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
