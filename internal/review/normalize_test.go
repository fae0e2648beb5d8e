package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQueryText(t *testing.T) {
	assert.Equal(t, "nguyen van a", NormalizeQueryText("  Nguyễn Văn A "))
	assert.Equal(t, "tran", NormalizeQueryText("Trần"))
	assert.Equal(t, "计算机科学", NormalizeQueryText("计算机科学"))
	assert.Equal(t, "", NormalizeQueryText("   "))
}
