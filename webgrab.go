// Package webgrab turns a rendered web page into a structured sequence of
// typed content blocks (title, headings, paragraphs) and renders them as
// downloadable documents. It drives a headless browser to materialize
// JavaScript-rendered and lazy-loaded content before extraction.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, docx/).
package webgrab
