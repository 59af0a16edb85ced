package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestAge(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	birthday := time.Date(2000, 8, 28, 0, 0, 0, 0, time.UTC)
	p := Profile{BirthDate: &birthday}
	age := p.Age(now)
	require.NotNil(t, age)
	assert.Equal(t, 26, *age)

	// One day before the anniversary still counts the previous year.
	dayAfter := time.Date(2000, 8, 29, 0, 0, 0, 0, time.UTC)
	p = Profile{BirthDate: &dayAfter}
	age = p.Age(now)
	require.NotNil(t, age)
	assert.Equal(t, 25, *age)

	p = Profile{}
	assert.Nil(t, p.Age(now))
}

func TestSharesPlatformWith(t *testing.T) {
	a := Profile{DiscordHandle: strPtr("alpha#1"), SteamHandle: strPtr("alpha")}
	b := Profile{SteamHandle: strPtr("bravo")}
	assert.True(t, a.SharesPlatformWith(&b))

	c := Profile{PSNHandle: strPtr("charlie")}
	assert.False(t, a.SharesPlatformWith(&c))

	// Empty strings do not count as a handle.
	d := Profile{SteamHandle: strPtr("")}
	assert.False(t, a.SharesPlatformWith(&d))
}

func TestSameLocationAs(t *testing.T) {
	a := Profile{City: strPtr("Campinas"), State: strPtr("SP")}
	b := Profile{City: strPtr("Campinas"), State: strPtr("SP")}
	assert.True(t, a.SameLocationAs(&b))

	c := Profile{City: strPtr("Campinas"), State: strPtr("RJ")}
	assert.False(t, a.SameLocationAs(&c))

	d := Profile{State: strPtr("SP")}
	assert.False(t, a.SameLocationAs(&d))
}

func TestOverallAverage(t *testing.T) {
	a := RatingAverages{AvgRespect: 4, AvgCommunication: 3, AvgHumor: 5, AvgCollaboration: 4}
	assert.InDelta(t, 4.0, a.Overall(), 1e-9)
}

func TestSatisfies(t *testing.T) {
	a := RatingAverages{AvgRespect: 4, AvgCommunication: 4, AvgHumor: 2, AvgCollaboration: 4}

	spec := DefaultFilterSpec()
	assert.True(t, a.Satisfies(spec))

	spec.MinHumor = 3
	assert.False(t, a.Satisfies(spec))
}
