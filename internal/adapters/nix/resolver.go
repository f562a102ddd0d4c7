// Package nix implements package resolution and shell evaluation against Nix.
//
// Resolution goes through NixHub, which maps a package name and version to the
// nixpkgs revision that carries it. Evaluation shells out to the nix CLI.
package nix

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	nixHubAPIBase     = "https://search.devbox.sh/v2/resolve"
	httpClientTimeout = 30 * time.Second
)

// Resolver implements ports.PackageResolver using the NixHub API with local
// on-disk caching.
type Resolver struct {
	apiBase    string
	cacheDir   string
	httpClient *http.Client
}

// NewResolver creates a new Resolver with the default cache location.
func NewResolver() (*Resolver, error) {
	return newResolver(nixHubAPIBase, domain.DefaultResolveCachePath(), &http.Client{
		Timeout: httpClientTimeout,
	})
}

// newResolver creates a Resolver with explicit API base, cache path and
// client. Tests use it to point at an httptest server.
func newResolver(apiBase, cachePath string, client *http.Client) (*Resolver, error) {
	cleanPath := filepath.Clean(cachePath)
	if err := os.MkdirAll(cleanPath, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create resolve cache directory")
	}
	return &Resolver{
		apiBase:    apiBase,
		cacheDir:   cleanPath,
		httpClient: client,
	}, nil
}

// Resolve resolves a package reference to per-system nixpkgs pins.
// The cache is consulted first; on a miss NixHub is queried and the answer is
// persisted. The resolved version must satisfy the reference's constraint.
func (r *Resolver) Resolve(ctx context.Context, ref domain.PackageRef) (domain.ResolvedPackage, error) {
	cachePath := r.cachePath(ref)
	if entry, err := loadCacheEntry(cachePath); err == nil {
		return entryToPackage(entry), nil
	}

	resp, err := r.queryNixHub(ctx, ref)
	if err != nil {
		return domain.ResolvedPackage{}, err
	}

	if !ref.Matches(resp.Version) {
		conErr := zerr.With(domain.ErrConstraintNotMet, "ref", ref.String())
		return domain.ResolvedPackage{}, zerr.With(conErr, "resolved_version", resp.Version)
	}

	systems := supportedOnly(resp.Systems)
	if len(systems) == 0 {
		// Surface this at lock time instead of caching an empty entry that
		// only fails later in shell or fetch.
		sysErr := zerr.With(domain.ErrUnsupportedSystem, "ref", ref.String())
		return domain.ResolvedPackage{}, zerr.With(sysErr, "upstream_systems", systemNames(resp.Systems))
	}

	entry := cacheEntry{
		Ref:       ref.String(),
		Name:      resp.Name,
		Version:   resp.Version,
		Systems:   systems,
		Timestamp: time.Now(),
	}
	if err := saveCacheEntry(cachePath, entry); err != nil {
		// A failed cache write is not fatal to the resolution itself.
		_ = err
	}

	return entryToPackage(entry), nil
}

// cachePath returns the cache file for a reference. The file name is a hash
// so constraint characters never reach the filesystem.
func (r *Resolver) cachePath(ref domain.PackageRef) string {
	sum := sha256.Sum256([]byte(ref.String()))
	return filepath.Join(r.cacheDir, hex.EncodeToString(sum[:])+".json")
}

func (r *Resolver) queryNixHub(ctx context.Context, ref domain.PackageRef) (*nixHubResponse, error) {
	query := url.Values{}
	query.Set("name", ref.Name.String())
	if c := ref.Constraint.String(); c != "" {
		query.Set("version", c)
	}
	endpoint := fmt.Sprintf("%s?%s", r.apiBase, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build NixHub request")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "NixHub request failed"), "ref", ref.String())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, zerr.With(domain.ErrPackageNotFound, "ref", ref.String())
	}
	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.New("unexpected NixHub status"), "status", resp.StatusCode)
		return nil, zerr.With(statusErr, "ref", ref.String())
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read NixHub response")
	}

	var hubResp nixHubResponse
	if err := json.Unmarshal(body, &hubResp); err != nil {
		return nil, zerr.Wrap(err, "failed to parse NixHub response")
	}
	if len(hubResp.Systems) == 0 {
		return nil, zerr.With(domain.ErrPackageNotFound, "ref", ref.String())
	}

	return &hubResp, nil
}

func systemNames(systems map[string]systemResponse) []string {
	names := make([]string, 0, len(systems))
	for name := range systems {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// supportedOnly drops systems shelf never resolves for.
func supportedOnly(systems map[string]systemResponse) map[string]systemResponse {
	filtered := make(map[string]systemResponse, len(systems))
	for name, data := range systems {
		if _, ok := domain.SupportedSystems[name]; ok {
			filtered[name] = data
		}
	}
	return filtered
}

func entryToPackage(entry cacheEntry) domain.ResolvedPackage {
	pkg := domain.ResolvedPackage{
		Name:    domain.NewInternedString(entry.Name),
		Version: domain.NewInternedString(entry.Version),
		Systems: make(map[string]domain.NixPackageInfo, len(entry.Systems)),
	}
	for system, data := range entry.Systems {
		outputs := make([]domain.LockedOutput, len(data.Outputs))
		for i, out := range data.Outputs {
			outputs[i] = domain.LockedOutput{
				Name:    out.Name,
				Path:    out.Path,
				Default: out.Default,
			}
		}
		pkg.Systems[system] = domain.NixPackageInfo{
			Owner:    domain.NewInternedString(data.FlakeInstallable.Ref.Owner),
			Repo:     domain.NewInternedString(data.FlakeInstallable.Ref.Repo),
			Rev:      domain.NewInternedString(data.FlakeInstallable.Ref.Rev),
			AttrPath: domain.NewInternedString(data.FlakeInstallable.AttrPath),
			Outputs:  outputs,
		}
	}
	return pkg
}

func loadCacheEntry(path string) (cacheEntry, error) {
	//nolint:gosec // path is a hashed name under the trusted cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cacheEntry{}, err
		}
		return cacheEntry{}, zerr.Wrap(err, "failed to read resolve cache")
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return cacheEntry{}, zerr.Wrap(err, "failed to parse resolve cache")
	}
	return entry, nil
}

func saveCacheEntry(path string, entry cacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal resolve cache entry")
	}
	return atomicWriteFile(path, data)
}

// atomicWriteFile writes data via a temp file and rename so a crashed write
// never leaves a truncated cache entry behind.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "shelf-cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
