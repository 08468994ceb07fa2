// Package geoaudit provides AI search visibility audits for web pages.
// It parses messy real-world HTML to recover structured data (JSON-LD,
// Microdata, framework-embedded payloads), derives semantic structure
// signals, and blends rule-based and AI-assisted scoring into a bounded
// composite score with a letter grade.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, sqlite/).
package geoaudit
