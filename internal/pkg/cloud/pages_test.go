package cloud

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeFiles(n int) []File {
	files := make([]File, n)
	for i := range files {
		files[i] = File{ID: fmt.Sprintf("f%d", i), Name: fmt.Sprintf("file-%d", i)}
	}
	return files
}

func TestPage(t *testing.T) {
	files := makeFiles(7)

	tests := []struct {
		page      int
		wantFirst string
		wantLen   int
	}{
		{page: 1, wantFirst: "f0", wantLen: 5},
		{page: 2, wantFirst: "f5", wantLen: 2},
		{page: 3, wantLen: 0},
		{page: 0, wantFirst: "f0", wantLen: 5},
	}

	for _, tt := range tests {
		got := Page(files, tt.page)
		assert.Len(t, got, tt.wantLen, "page %d", tt.page)
		if tt.wantLen > 0 {
			assert.Equal(t, tt.wantFirst, got[0].ID, "page %d", tt.page)
		}
	}
}

func TestPageExactBoundary(t *testing.T) {
	files := makeFiles(10)
	assert.Len(t, Page(files, 2), 5)
	assert.Empty(t, Page(files, 3))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(5))
	assert.Equal(t, 2, TotalPages(6))
	assert.Equal(t, 2, TotalPages(7))
	assert.Equal(t, 2, TotalPages(10))
	assert.Equal(t, 3, TotalPages(11))
}
