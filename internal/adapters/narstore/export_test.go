package narstore

// Exported internals for tests.

var (
	ParseNarInfo    = parseNarInfo
	StorePathDigest = storePathDigest
	ToNixBase32     = toNixBase32
)
