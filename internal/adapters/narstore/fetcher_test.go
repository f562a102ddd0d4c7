package narstore_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"go.trai.ch/shelf/internal/adapters/narstore"
	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"zombiezen.com/go/nix/nar"
)

const testStorePath = "/nix/store/aaaabbbbccccddddeeeeffffgggghhhh-openssl-3.0.14"

// buildTestNar dumps a small openssl-shaped output tree into NAR bytes.
func buildTestNar(t *testing.T) []byte {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "bin", "openssl"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lib", "libssl.so.3"), []byte("elf"), 0o644))
	require.NoError(t, os.Symlink("libssl.so.3", filepath.Join(root, "lib", "libssl.so")))

	var buf bytes.Buffer
	require.NoError(t, nar.DumpPath(&buf, root))
	return buf.Bytes()
}

// newCacheServer serves a .narinfo plus its NAR under nar/test.nar. The
// narinfo's FileHash matches narData; served bytes default to narData unless
// overridden to simulate tampering.
func newCacheServer(t *testing.T, narData, served []byte, compression string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	if served == nil {
		served = narData
	}
	sum := sha256.Sum256(narData)
	fileHash := "sha256:" + narstore.ToNixBase32(sum[:])

	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/aaaabbbbccccddddeeeeffffgggghhhh.narinfo", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		fmt.Fprintf(w, "StorePath: %s\nURL: nar/test.nar\nCompression: %s\nFileHash: %s\nFileSize: %d\n",
			testStorePath, compression, fileHash, len(narData))
	})
	mux.HandleFunc("/nar/test.nar", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(served)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &hits
}

func newFetcher(t *testing.T, cacheURL string) *narstore.Fetcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return narstore.NewFetcherWithCache(logger, cacheURL)
}

func TestFetch_Uncompressed(t *testing.T) {
	narData := buildTestNar(t)
	server, _ := newCacheServer(t, narData, nil, "none")

	fetcher := newFetcher(t, server.URL)
	destDir := t.TempDir()

	target, err := fetcher.Fetch(context.Background(), testStorePath, destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, filepath.Base(testStorePath)), target)

	content, err := os.ReadFile(filepath.Join(target, "lib", "libssl.so.3"))
	require.NoError(t, err)
	assert.Equal(t, "elf", string(content))

	// The executable bit survives unpacking.
	binInfo, err := os.Stat(filepath.Join(target, "bin", "openssl"))
	require.NoError(t, err)
	assert.NotZero(t, binInfo.Mode()&0o100)

	link, err := os.Readlink(filepath.Join(target, "lib", "libssl.so"))
	require.NoError(t, err)
	assert.Equal(t, "libssl.so.3", link)
}

func TestFetch_XZCompressed(t *testing.T) {
	narData := buildTestNar(t)

	var compressed bytes.Buffer
	xzWriter, err := xz.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = xzWriter.Write(narData)
	require.NoError(t, err)
	require.NoError(t, xzWriter.Close())

	server, _ := newCacheServer(t, compressed.Bytes(), nil, "xz")

	fetcher := newFetcher(t, server.URL)
	target, err := fetcher.Fetch(context.Background(), testStorePath, t.TempDir())
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(target, "lib", "libssl.so.3"))
	require.NoError(t, err)
	assert.Equal(t, "elf", string(content))
}

func TestFetch_AlreadyMaterialized(t *testing.T) {
	server, hits := newCacheServer(t, nil, nil, "none")

	destDir := t.TempDir()
	target := filepath.Join(destDir, filepath.Base(testStorePath))
	require.NoError(t, os.MkdirAll(target, 0o755))

	fetcher := newFetcher(t, server.URL)
	got, err := fetcher.Fetch(context.Background(), testStorePath, destDir)
	require.NoError(t, err)

	assert.Equal(t, target, got)
	assert.Zero(t, hits.Load(), "an existing output must not hit the cache")
}

func TestFetch_TamperedNar(t *testing.T) {
	narData := buildTestNar(t)

	// The served bytes differ from what the narinfo's FileHash promises.
	tampered := append(append([]byte(nil), narData...), 'x')
	server, _ := newCacheServer(t, narData, tampered, "none")

	fetcher := newFetcher(t, server.URL)
	destDir := t.TempDir()

	_, err := fetcher.Fetch(context.Background(), testStorePath, destDir)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())

	// Nothing gets materialized or left behind on a hash mismatch.
	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetch_NotInCache(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	fetcher := newFetcher(t, server.URL)
	_, err := fetcher.Fetch(context.Background(), testStorePath, t.TempDir())
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
}

func TestFetch_MalformedStorePath(t *testing.T) {
	fetcher := newFetcher(t, "http://127.0.0.1:0")
	_, err := fetcher.Fetch(context.Background(), "/nix/store/bogus", t.TempDir())
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
}
