package tz

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupUTC(t *testing.T) {
	z, ok := Lookup("UTC")
	require.True(t, ok)
	assert.Same(t, UTC, z)
	assert.Equal(t, "UTC", z.Name())
}

func TestLookupCachesHandles(t *testing.T) {
	r := &Registry{}
	a, ok := r.Lookup("America/New_York")
	require.True(t, ok)
	b, ok := r.Lookup("America/New_York")
	require.True(t, ok)
	assert.Same(t, a, b)
	assert.Equal(t, "America/New_York", a.Name())
}

func TestLookupUnknown(t *testing.T) {
	r := &Registry{}
	for _, name := range []string{"Mars/Olympus_Mons", "", "Local", "not a zone"} {
		z, ok := r.Lookup(name)
		assert.False(t, ok, "Lookup(%q)", name)
		assert.Nil(t, z, "Lookup(%q)", name)
	}
	// Negative lookups are cached too.
	z, ok := r.Lookup("Mars/Olympus_Mons")
	assert.False(t, ok)
	assert.Nil(t, z)
}

func TestLookupConcurrent(t *testing.T) {
	r := &Registry{}
	const goroutines = 16

	handles := make([]*TimeZone, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if z, ok := r.Lookup("America/New_York"); ok {
				handles[i] = z
			}
			r.Lookup("Mars/Olympus_Mons")
			r.Lookup("UTC")
		}(i)
	}
	wg.Wait()

	// All goroutines race the first insert but must end up sharing one handle.
	require.NotNil(t, handles[0])
	for i := 1; i < goroutines; i++ {
		assert.Same(t, handles[0], handles[i])
	}
}

func TestLocalToUTC(t *testing.T) {
	newYork, ok := Lookup("America/New_York")
	require.True(t, ok)

	cases := []struct {
		name  string
		zone  *TimeZone
		local int64
		want  int64
	}{
		{"utc is identity", UTC, 1705314600, 1705314600},
		// 2024-01-15 10:30:00 EST, UTC-5.
		{"standard time", newYork, 1705314600, 1705332600},
		// 2024-07-01 12:00:00 EDT, UTC-4.
		{"daylight saving time", newYork, 1719835200, 1719849600},
		{"before the epoch", UTC, -86400, -86400},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.zone.LocalToUTC(c.local), c.name)
	}
}

func TestUTCToLocal(t *testing.T) {
	newYork, ok := Lookup("America/New_York")
	require.True(t, ok)

	assert.Equal(t, int64(1705314600), UTC.UTCToLocal(1705314600))
	assert.Equal(t, int64(1705314600), newYork.UTCToLocal(1705332600))
	assert.Equal(t, int64(1719835200), newYork.UTCToLocal(1719849600))
}

func TestLocalToUTCRoundTrip(t *testing.T) {
	newYork, ok := Lookup("America/New_York")
	require.True(t, ok)

	// Instants away from transitions survive the round trip in both orders.
	for _, utc := range []int64{0, 1705332600, 1719849600, -1000000} {
		local := newYork.UTCToLocal(utc)
		assert.Equal(t, utc, newYork.LocalToUTC(local), "utc=%d", utc)
	}
}
