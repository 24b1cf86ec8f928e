package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "quizzy_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "quizzy_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "quizzy_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "quizzy_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "quizzy_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "quizzy_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "quizzy_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumTable(t *testing.T) {
	input := "abc123  quizzy_Darwin_all.tar.gz\n" +
		"badline\n" +
		"  \n" +
		"foo  bar  baz\n" +
		"def456  quizzy_Linux_x86_64.tar.gz\n"

	table := checksumTable([]byte(input))

	assert.Equal(t, map[string]string{
		"quizzy_Darwin_all.tar.gz":   "abc123",
		"quizzy_Linux_x86_64.tar.gz": "def456",
	}, table)
	assert.Empty(t, checksumTable(nil))
}

func TestUnpackBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho quizzy")

	t.Run("tar.gz", func(t *testing.T) {
		archive := makeTarGz(t, "quizzy", binaryContent)
		got, err := unpackBinary(archive, "quizzy_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := makeTarGz(t, "other-file", binaryContent)
		_, err := unpackBinary(archive, "quizzy_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "quizzy")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, swapBinary(newData, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	// The original executable mode survives the swap.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseServer serves a fake GitHub release for the given tag, asset,
// and checksums body.
func releaseServer(t *testing.T, tag, asset string, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/abhisek/quizzy/releases/latest":
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
		case fmt.Sprintf("/abhisek/quizzy/releases/download/%s/%s", tag, asset):
			_, _ = w.Write(archive)
		case fmt.Sprintf("/abhisek/quizzy/releases/download/%s/checksums.txt", tag):
			_, _ = w.Write([]byte(checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-quizzy-binary")
	archive := makeTarGz(t, "quizzy", binaryContent)
	darwinAsset := "quizzy_Darwin_all.tar.gz"
	goodChecksums := fmt.Sprintf("%s  %s\n", sha256Hex(archive), darwinAsset)

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "quizzy")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, "v2.0.0", darwinAsset, archive, goodChecksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
			withPlatform("darwin", "arm64"),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("asset follows configured platform", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "quizzy")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		linuxAsset := "quizzy_Linux_x86_64.tar.gz"
		checksums := fmt.Sprintf("%s  %s\n", sha256Hex(archive), linuxAsset)
		server := releaseServer(t, "v2.0.0", linuxAsset, archive, checksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
			withPlatform("linux", "amd64"),
		)

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0", darwinAsset, archive, goodChecksums)
		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badChecksums := fmt.Sprintf("%s  %s\n",
			"0000000000000000000000000000000000000000000000000000000000000000", darwinAsset)
		server := releaseServer(t, "v2.0.0", darwinAsset, archive, badChecksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withPlatform("darwin", "arm64"),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		// Release metadata exists but the asset 404s.
		server := releaseServer(t, "v2.0.0", "some_other_asset.tar.gz", nil, "")
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withPlatform("darwin", "arm64"),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
