// Package docview provides a local documentation browser. It indexes a
// directory tree once at startup and serves each file either raw or
// rendered as Markdown, reStructuredText or plain text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goldmark/, gorst/, chardet/).
package docview
