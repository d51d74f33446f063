package controllers

// ExpandHome exports expandHome for testing.
var ExpandHome = expandHome //nolint:gochecknoglobals // test export

// ResolveBasePath exports resolveBasePath for testing.
var ResolveBasePath = resolveBasePath //nolint:gochecknoglobals // test export

// WriteSummary exports writeSummary for testing.
var WriteSummary = writeSummary //nolint:gochecknoglobals // test export
