// Package battle is a small pooled domain model, a battlefield holding a
// grid map and a list of units, that serializes itself through package
// serial and deserializes itself with the dispatchers of package
// dispatch.
//
// A document has the form
//
//	{"battleField": {"battleMap": {...}, "battleUnits": [...]}}
//
// where a map records only its dimensions and the indices of its special
// grids.
package battle
