package geozone

import "sportapp/internal/domain"

var catalog = []domain.IncidentCatalogEntry{
	{Name: "Road closure", Description: "Road closed due to maintenance works, take an alternative route"},
	{Name: "Traffic accident", Description: "Traffic accident reported nearby, expect emergency vehicles"},
	{Name: "Heavy rain", Description: "Heavy rain in the area, surfaces may be slippery"},
	{Name: "Flooding", Description: "Flooded streets reported, avoid low-lying paths"},
	{Name: "Landslide", Description: "Landslide risk on hillside routes, stay on main roads"},
	{Name: "Public demonstration", Description: "Public demonstration in progress, roads may be blocked"},
	{Name: "Street race", Description: "Organized street race in progress, route partially closed"},
	{Name: "Poor air quality", Description: "Poor air quality detected, reduce outdoor exertion"},
	{Name: "Heat wave", Description: "Extreme heat warning, hydrate and avoid midday training"},
	{Name: "Thunderstorm", Description: "Thunderstorm with lightning approaching, seek shelter"},
	{Name: "Power outage", Description: "Power outage affecting street lighting in the area"},
	{Name: "Fallen tree", Description: "Fallen tree blocking the path, proceed with caution"},
	{Name: "Robbery reports", Description: "Recent robbery reports in the area, stay alert"},
	{Name: "Stray animals", Description: "Stray dogs reported along the route"},
	{Name: "Construction zone", Description: "Active construction zone with heavy machinery"},
	{Name: "Gas leak", Description: "Gas leak reported, authorities have cordoned off the area"},
	{Name: "Fire", Description: "Fire reported nearby, smoke may affect visibility"},
	{Name: "Fog", Description: "Dense fog reducing visibility on roads and trails"},
	{Name: "Bridge closure", Description: "Bridge closed for inspection, detour in place"},
	{Name: "Mass event", Description: "Large crowd event nearby, expect congestion"},
}

// Catalog returns a copy of every incident scenario the generator can emit.
func Catalog() []domain.IncidentCatalogEntry {
	out := make([]domain.IncidentCatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}
