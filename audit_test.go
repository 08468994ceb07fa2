package geoaudit_test

import (
	"testing"

	"github.com/kimmoihanus/geoaudit"
	"github.com/stretchr/testify/assert"
)

func TestGradeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		grade string
	}{
		{100, "A"},
		{85, "A"},
		{84, "B"},
		{70, "B"},
		{69, "C"},
		{55, "C"},
		{54, "D"},
		{40, "D"},
		{39, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, geoaudit.GradeFor(tt.score), "score %d", tt.score)
	}
}

func TestClampScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, geoaudit.ClampScore(-5))
	assert.Equal(t, 0, geoaudit.ClampScore(0))
	assert.Equal(t, 73, geoaudit.ClampScore(73))
	assert.Equal(t, 100, geoaudit.ClampScore(100))
	assert.Equal(t, 100, geoaudit.ClampScore(140))
}
