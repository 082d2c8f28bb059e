package geofiles

import (
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

// listFilter is the reviewable table of everything GET /geofiles can
// narrow on. Zero values mean "don't filter".
type listFilter struct {
	Search      string
	FileType    string
	Tags        []string
	AccessLevel string
	DateFrom    *time.Time
	DateTo      *time.Time
}

// applyFilter pushes the cheap predicates into SQL. Tag overlap is
// matched in Go afterwards (see matchesTags) so the query stays portable
// across the Postgres and test drivers.
func applyFilter(q *gorm.DB, f listFilter) *gorm.DB {
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(filename) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if f.FileType != "" {
		q = q.Where("file_type = ?", f.FileType)
	}
	if f.AccessLevel != "" {
		q = q.Where("access_level = ?", f.AccessLevel)
	}
	if f.DateFrom != nil {
		q = q.Where("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("created_at <= ?", *f.DateTo)
	}
	return q
}

// matchesTags reports whether the file carries at least one wanted tag.
func matchesTags(file Geofile, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, tag := range file.Tags {
			if strings.EqualFold(tag, w) {
				return true
			}
		}
	}
	return false
}

// metersPerDegreeLat is close enough at city scale, which is all the
// radius search promises.
const metersPerDegreeLat = 111320.0

// withinRadius does a planar distance check against a center point.
// Files without coordinates never match.
func withinRadius(file Geofile, lat, lng, radiusMeters float64) bool {
	if file.Latitude == nil || file.Longitude == nil {
		return false
	}
	dLat := (*file.Latitude - lat) * metersPerDegreeLat
	dLng := (*file.Longitude - lng) * metersPerDegreeLat * math.Cos(lat*math.Pi/180)
	return math.Sqrt(dLat*dLat+dLng*dLng) <= radiusMeters
}

// mergeTags unions new tags into existing ones, case-insensitively,
// preserving first-seen spelling and order.
func mergeTags(existing []string, added []string) []string {
	out := append([]string{}, existing...)
	for _, a := range added {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		dup := false
		for _, e := range out {
			if strings.EqualFold(e, a) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}
