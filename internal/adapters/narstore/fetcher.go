package narstore

import (
	"compress/bzip2"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
	"zombiezen.com/go/nix/nar"
)

const (
	defaultCacheURL    = "https://cache.nixos.org"
	fetchClientTimeout = 5 * time.Minute
)

// Fetcher implements ports.OutputFetcher against a Nix binary cache.
type Fetcher struct {
	cacheURL   string
	httpClient *http.Client
	logger     ports.Logger
}

// NewFetcher creates a Fetcher for the public nixos.org binary cache.
func NewFetcher(logger ports.Logger) *Fetcher {
	return NewFetcherWithCache(logger, defaultCacheURL)
}

// NewFetcherWithCache creates a Fetcher for an explicit cache URL.
func NewFetcherWithCache(logger ports.Logger, cacheURL string) *Fetcher {
	return &Fetcher{
		cacheURL: strings.TrimRight(cacheURL, "/"),
		httpClient: &http.Client{
			Timeout: fetchClientTimeout,
		},
		logger: logger,
	}
}

// Fetch downloads and unpacks the output at storePath into destDir.
// Returns the local path of the materialized output. An already materialized
// output is returned as is.
func (f *Fetcher) Fetch(ctx context.Context, storePath, destDir string) (string, error) {
	digest, err := storePathDigest(storePath)
	if err != nil {
		return "", err
	}

	target := filepath.Join(destDir, filepath.Base(storePath))
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}

	info, err := f.fetchNarInfo(ctx, digest)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, domain.DirPerm); err != nil {
		return "", zerr.Wrap(err, "failed to create store directory")
	}

	// Download to a temp file and verify the hash before anything is
	// unpacked, so a tampered or truncated NAR never reaches the store.
	narPath, err := f.downloadNar(ctx, info, destDir)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(narPath) }()

	narFile, err := os.Open(narPath) //nolint:gosec // temp file created above
	if err != nil {
		return "", zerr.Wrap(err, "failed to reopen downloaded NAR")
	}
	defer func() { _ = narFile.Close() }()

	narReader, err := decompress(narFile, info.Compression)
	if err != nil {
		return "", err
	}

	// Unpack into a temp sibling and rename, so destDir never holds a
	// half-unpacked output.
	tmpDir, err := os.MkdirTemp(destDir, ".fetch-*")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create unpack directory")
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	if err := unpackNar(narReader, tmpDir); err != nil {
		return "", err
	}
	if err := os.Rename(tmpDir, target); err != nil {
		return "", zerr.Wrap(err, "failed to move unpacked output into place")
	}

	f.logger.Info("fetched " + filepath.Base(storePath))
	return target, nil
}

// downloadNar streams the NAR into a temp file under dir, hashing as it goes,
// and checks the sum against the narinfo's FileHash. Returns the temp path.
func (f *Fetcher) downloadNar(ctx context.Context, info narInfo, dir string) (string, error) {
	body, err := f.get(ctx, f.cacheURL+"/"+info.URL)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	tmpFile, err := os.CreateTemp(dir, ".nar-*")
	if err != nil {
		return "", zerr.Wrap(err, "failed to create NAR temp file")
	}
	tmpName := tmpFile.Name()

	hasher := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmpFile, hasher), body); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpName)
		return "", zerr.Wrap(err, "failed to download NAR")
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", zerr.Wrap(err, "failed to close NAR temp file")
	}

	if err := verifyFileHash(hasher.Sum(nil), info.FileHash); err != nil {
		_ = os.Remove(tmpName)
		return "", zerr.With(err, "url", info.URL)
	}

	return tmpName, nil
}

func (f *Fetcher) fetchNarInfo(ctx context.Context, digest string) (narInfo, error) {
	body, err := f.get(ctx, fmt.Sprintf("%s/%s.narinfo", f.cacheURL, digest))
	if err != nil {
		return narInfo{}, err
	}
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(body)
	if err != nil {
		return narInfo{}, zerr.Wrap(err, "failed to read narinfo")
	}
	return parseNarInfo(data)
}

func (f *Fetcher) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build cache request")
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		statusErr := zerr.With(domain.ErrFetchFailed, "url", url)
		return nil, zerr.With(statusErr, "status", resp.StatusCode)
	}
	return resp.Body, nil
}

// decompress wraps the NAR stream according to the narinfo compression field.
func decompress(r io.Reader, compression string) (io.Reader, error) {
	switch compression {
	case "", "none":
		return r, nil
	case "xz":
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to open xz stream")
		}
		return xzReader, nil
	case "bzip2":
		return bzip2.NewReader(r), nil
	default:
		return nil, zerr.With(domain.ErrFetchFailed, "compression", compression)
	}
}

// unpackNar extracts a NAR stream into destDir.
func unpackNar(r io.Reader, destDir string) error {
	narReader := nar.NewReader(r)
	for {
		hdr, err := narReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read NAR entry")
		}

		//nolint:gosec // NAR paths are relative by construction
		targetPath := filepath.Join(destDir, hdr.Path)

		switch {
		case hdr.Mode.IsDir():
			if err := os.MkdirAll(targetPath, domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create directory")
			}
		case hdr.Mode&os.ModeSymlink != 0:
			if err := os.MkdirAll(filepath.Dir(targetPath), domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create parent directory")
			}
			if err := os.Symlink(hdr.LinkTarget, targetPath); err != nil {
				return zerr.Wrap(err, "failed to create symlink")
			}
		default:
			if err := os.MkdirAll(filepath.Dir(targetPath), domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create parent directory")
			}
			perm := os.FileMode(0o644)
			if hdr.Mode&0o100 != 0 {
				perm = 0o755
			}
			if err := writeFile(targetPath, narReader, perm); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFile(path string, r io.Reader, perm os.FileMode) error {
	//nolint:gosec // path is under the unpack directory
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return zerr.Wrap(err, "failed to create file")
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to write file content")
	}
	return f.Close()
}

var _ ports.OutputFetcher = (*Fetcher)(nil)
