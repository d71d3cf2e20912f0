package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/internal/menu"
)

func TestBuildIsDeterministic(t *testing.T) {
	for _, size := range []constants.ImageSize{constants.SizeSmall, constants.SizeMedium, constants.SizeLarge} {
		a := Build(menu.Item("Margherita Pizza"), size)
		b := Build(menu.Item("Margherita Pizza"), size)
		require.Equal(t, a, b, "size %s", size)
	}
}

func TestBuildContainsItemName(t *testing.T) {
	p := Build(menu.Item("Caesar Salad"), constants.SizeMedium)
	assert.True(t, strings.Contains(p, "Caesar Salad"))
	assert.True(t, strings.HasPrefix(p, "professional food photography"))
}

func TestBuildVariesBySize(t *testing.T) {
	small := Build(menu.Item("Ramen"), constants.SizeSmall)
	large := Build(menu.Item("Ramen"), constants.SizeLarge)
	assert.NotEqual(t, small, large)
}

func TestBuildUnknownSizeFallsBackToMedium(t *testing.T) {
	got := Build(menu.Item("Gyoza"), constants.ImageSize("giant"))
	want := Build(menu.Item("Gyoza"), constants.SizeMedium)
	assert.Equal(t, want, got)
}
