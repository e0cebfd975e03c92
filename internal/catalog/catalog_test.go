package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisharahman/gradpath/internal/domain"
)

func TestGetBaseCourse(t *testing.T) {
	cat := New()

	course, ok := cat.Get("CS141")
	require.True(t, ok)
	assert.Equal(t, "CS 141", course.Code)
	assert.Equal(t, []string{"CS111"}, course.Prerequisites)
	assert.Equal(t, []string{"MATH180"}, course.ConcurrentPrerequisites)
	assert.False(t, course.Synthesized)

	_, ok = cat.Get("NOPE999")
	assert.False(t, ok)
}

func TestAddSynthesized(t *testing.T) {
	cat := New()
	cat.AddSynthesized(&domain.Course{
		ID: "HIST161", Code: "HIST 161", Name: "World History",
		Credits: 3, Category: domain.CategoryGeneral,
	})

	course, ok := cat.Get("HIST161")
	require.True(t, ok)
	assert.True(t, course.Synthesized)

	synth := cat.Synthesized()
	require.Len(t, synth, 1)
	assert.Equal(t, "HIST161", synth[0].ID)
}

func TestOverlayShadowsBase(t *testing.T) {
	cat := New()
	cat.AddSynthesized(&domain.Course{
		ID: "CS111", Code: "CS 111", Name: "Renamed", Credits: 3,
		Category: domain.CategoryCore,
	})

	course, ok := cat.Get("CS111")
	require.True(t, ok)
	assert.Equal(t, "Renamed", course.Name)
	assert.True(t, course.Synthesized)
}

func TestOverlayDoesNotLeakAcrossInstances(t *testing.T) {
	a := New()
	a.AddSynthesized(&domain.Course{ID: "XXX100", Name: "X", Credits: 3, Category: domain.CategoryGeneral})

	b := New()
	_, ok := b.Get("XXX100")
	assert.False(t, ok)
}

func TestAllSortedAndShadowed(t *testing.T) {
	cat := New()
	cat.AddSynthesized(&domain.Course{
		ID: "CS111", Code: "CS 111", Name: "Renamed", Credits: 3,
		Category: domain.CategoryCore,
	})

	all := cat.All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].ID, all[i].ID)
	}

	count := 0
	for _, course := range all {
		if course.ID == "CS111" {
			count++
			assert.Equal(t, "Renamed", course.Name)
		}
	}
	assert.Equal(t, 1, count)
}

func TestBaseCatalogContainsPlaceholders(t *testing.T) {
	cat := New()
	for _, id := range []string{"GEN101", "GEN107", "FREE001", "FREE003"} {
		assert.True(t, cat.Has(id), id)
	}
}
