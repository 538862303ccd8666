// Package tz resolves timezone identifiers to handles and converts between
// local wall-clock time and UTC. Zone rules come from the IANA database
// embedded in the binary, so lookups behave the same on every platform.
//
// Handles returned by a Registry are shared and long-lived; callers keep
// non-owning references to them and must not mutate them.
package tz

import (
	"sync"
	"time"
	_ "time/tzdata" // embed the zone database

	"github.com/ngrash/go-sqltime/calendar"
	"github.com/ngrash/go-sqltime/internal/intmath"
)

const secondsPerDay = 86400

// TimeZone is a handle to a named timezone. The zero value is not usable;
// handles are obtained from a Registry.
type TimeZone struct {
	name string
	loc  *time.Location
}

// UTC is the handle for Coordinated Universal Time.
var UTC = &TimeZone{name: "UTC", loc: time.UTC}

// Name returns the identifier the zone was resolved under.
func (z *TimeZone) Name() string { return z.name }

// Location returns the underlying time.Location.
func (z *TimeZone) Location() *time.Location { return z.loc }

// LocalToUTC interprets sec as wall-clock seconds since the epoch in z and
// returns the corresponding UTC seconds. Wall times skipped by a forward
// zone transition resolve the way time.Date resolves them.
func (z *TimeZone) LocalToUTC(sec int64) int64 {
	days := intmath.FloorDiv(sec, secondsPerDay)
	rem := intmath.FloorMod(sec, secondsPerDay)
	year, month, day := calendar.DateFromDays(days)
	t := time.Date(int(year), time.Month(month), int(day),
		int(rem/3600), int(rem/60%60), int(rem%60), 0, z.loc)
	return t.Unix()
}

// UTCToLocal converts UTC seconds since the epoch to wall-clock seconds in z.
func (z *TimeZone) UTCToLocal(sec int64) int64 {
	_, offset := time.Unix(sec, 0).In(z.loc).Zone()
	return sec + int64(offset)
}

// Registry resolves timezone names to handles. Lookups are cached and safe
// for concurrent use. The zero value is ready to use.
type Registry struct {
	mu    sync.RWMutex
	zones map[string]*TimeZone
}

// DefaultRegistry is the registry used by the top-level Lookup function.
var DefaultRegistry = &Registry{}

// Lookup resolves name in the DefaultRegistry.
func Lookup(name string) (*TimeZone, bool) {
	return DefaultRegistry.Lookup(name)
}

// Lookup returns the handle for the named zone, or false if the name is not
// a known timezone identifier. Repeated lookups of the same name return the
// same handle.
func (r *Registry) Lookup(name string) (*TimeZone, bool) {
	// The time package resolves "" to UTC and "Local" to the process
	// environment. Neither is a zone identifier in the IANA sense.
	if name == "" || name == "Local" {
		return nil, false
	}
	if name == "UTC" {
		return UTC, true
	}

	r.mu.RLock()
	z, cached := r.zones[name]
	r.mu.RUnlock()
	if cached {
		return z, z != nil
	}

	loc, err := time.LoadLocation(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.zones == nil {
		r.zones = make(map[string]*TimeZone)
	}
	if err != nil {
		r.zones[name] = nil // negative entry
		return nil, false
	}
	// Another goroutine may have raced us here; keep the first handle.
	if z, cached := r.zones[name]; cached && z != nil {
		return z, true
	}
	z = &TimeZone{name: name, loc: loc}
	r.zones[name] = z
	return z, true
}
