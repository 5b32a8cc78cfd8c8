package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDays(t *testing.T) {
	view := Render([]Day{
		day("2024-01-15", 39.5, 50.4, "rain"),
		day("2024-01-16", -3.5, 0.49, ""),
	})

	assert.Empty(t, view.Message)
	require.Len(t, view.Days, 2)

	first := view.Days[0]
	assert.Equal(t, "Mon", first.Weekday)
	assert.Equal(t, 40, first.Min)
	assert.Equal(t, 50, first.Max)
	assert.Equal(t, "°F", first.Unit)
	assert.Equal(t,
		"https://raw.githubusercontent.com/visualcrossing/WeatherIcons/refs/heads/main/PNG/1st%20Set%20-%20Color/rain.png",
		first.IconURL)

	second := view.Days[1]
	assert.Equal(t, "Tue", second.Weekday)
	assert.Equal(t, -3, second.Min)
	assert.Equal(t, 0, second.Max)
	assert.Empty(t, second.IconURL)
}

func TestRenderEmptyPromptsForLocation(t *testing.T) {
	view := Render(nil)
	assert.Equal(t, EmptyMessage, view.Message)
	assert.NotNil(t, view.Days)
	assert.Empty(t, view.Days)
}

func TestRoundTempHalfUp(t *testing.T) {
	cases := map[float64]int{45.5: 46, 45.49: 45, -0.5: 0, -3.5: -3, -3.51: -4, 72: 72}
	for in, want := range cases {
		assert.Equal(t, want, RoundTemp(in), "RoundTemp(%v)", in)
	}
}

func TestVisible(t *testing.T) {
	assert.Len(t, Visible(sevenDays()), DisplayDays)
	assert.Len(t, Visible(sevenDays()[:2]), 2)
	assert.Empty(t, Visible(nil))
}
