package git

// ParseAheadBehind exports parseAheadBehind for testing.
var ParseAheadBehind = parseAheadBehind //nolint:gochecknoglobals // test export

// CurrentBranch exports currentBranch for testing.
var CurrentBranch = currentBranch //nolint:gochecknoglobals // test export

// Fetch exports fetch for testing.
var Fetch = fetch //nolint:gochecknoglobals // test export
