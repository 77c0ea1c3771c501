// Package tagesschau provides structured scraping of the Tagesschau.de
// news archive. It parses archive listing pages into typed teaser records
// with content-derived identifiers and converts article pages into a
// structured markdown rendering.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/).
package tagesschau
