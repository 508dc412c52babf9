package mapview

import "math"

// Bounds is a lat/lng rectangle. The zero value is empty.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
	set   bool
}

func (b Bounds) Empty() bool { return !b.set }

// Extend grows b to include the point.
func (b Bounds) Extend(lat, lng float64) Bounds {
	if !b.set {
		return Bounds{South: lat, North: lat, West: lng, East: lng, set: true}
	}
	b.South = math.Min(b.South, lat)
	b.North = math.Max(b.North, lat)
	b.West = math.Min(b.West, lng)
	b.East = math.Max(b.East, lng)
	return b
}

// Pad enlarges b by ratio of its size on every side.
func (b Bounds) Pad(ratio float64) Bounds {
	if !b.set {
		return b
	}
	dLat := (b.North - b.South) * ratio
	dLng := (b.East - b.West) * ratio
	return Bounds{
		South: b.South - dLat,
		North: b.North + dLat,
		West:  b.West - dLng,
		East:  b.East + dLng,
		set:   true,
	}
}
