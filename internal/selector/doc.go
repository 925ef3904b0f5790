// Package selector evaluates path queries against tree data.
//
// An Engine owns one root value and answers three kinds of queries:
//
//	engine.Query("profile.name")                  // first match or ""
//	engine.Query("[school.staff.teachers.id]")    // every match, flattened
//	engine.Query("{teachers.id : teachers.name}") // keys zipped with values
//
// Segments separated by "." walk map attributes. Whenever an attribute holds
// a list, the walk continues through every element, so one path addresses
// single values and collections alike. Alternatives separated by "|" are tried
// left to right until one resolves.
//
// Missing attributes, null values and type mismatches are never errors: every
// query degrades to its default value.
package selector
