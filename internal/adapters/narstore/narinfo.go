// Package narstore fetches package outputs from a Nix binary cache.
//
// A store path is materialized without a local nix installation: the cache's
// .narinfo metadata locates the NAR archive, which is downloaded, decompressed
// and unpacked into a local directory.
package narstore

import (
	"bufio"
	"strconv"
	"strings"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/zerr"
)

// narInfo is the parsed form of a binary cache .narinfo document.
type narInfo struct {
	StorePath   string
	URL         string
	Compression string
	NarHash     string
	NarSize     int64
	FileHash    string
	FileSize    int64
	References  []string
}

// parseNarInfo parses the key-value .narinfo format served by binary caches.
func parseNarInfo(data []byte) (narInfo, error) {
	var info narInfo

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ": ")
		if !found {
			return narInfo{}, zerr.With(
				zerr.With(domain.ErrFetchFailed, "reason", "malformed narinfo line"), "line", line)
		}
		switch key {
		case "StorePath":
			info.StorePath = value
		case "URL":
			info.URL = value
		case "Compression":
			info.Compression = value
		case "NarHash":
			info.NarHash = value
		case "NarSize":
			info.NarSize, _ = strconv.ParseInt(value, 10, 64)
		case "FileHash":
			info.FileHash = value
		case "FileSize":
			info.FileSize, _ = strconv.ParseInt(value, 10, 64)
		case "References":
			if value != "" {
				info.References = strings.Fields(value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return narInfo{}, zerr.Wrap(err, "failed to scan narinfo")
	}

	if info.StorePath == "" || info.URL == "" {
		return narInfo{}, zerr.With(domain.ErrFetchFailed, "reason", "incomplete narinfo")
	}
	return info, nil
}

// storePathDigest extracts the 32-character digest prefix of a store path
// base name, which keys the .narinfo lookup.
func storePathDigest(storePath string) (string, error) {
	base := storePath
	if idx := strings.LastIndexByte(storePath, '/'); idx >= 0 {
		base = storePath[idx+1:]
	}
	digest, _, found := strings.Cut(base, "-")
	if !found || len(digest) != 32 {
		return "", zerr.With(
			zerr.With(domain.ErrFetchFailed, "reason", "malformed store path"), "store_path", storePath)
	}
	return digest, nil
}
