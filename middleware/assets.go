package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Assets referenced by the landing page, relative to the static directory
var LandingAssets = []string{
	"css/style.css",
	"js/landing.js",
	"images/favicon.svg",
}

var (
	assetVersions   = make(map[string]string)
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions hashes each file under staticDir for cache busting.
// Missing files keep the default version "1".
func InitAssetVersions(staticDir string, files ...string) {
	versions := make(map[string]string, len(files))
	for _, file := range files {
		if version := computeFileHash(filepath.Join(staticDir, file)); version != "" {
			versions[file] = version
		}
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d of %d files hashed", len(versions), len(files))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash of a static file
// Note: ctx is accepted so templates can call it like the other request helpers
func AssetVersion(ctx context.Context, file string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[file]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static file
func AssetURL(ctx context.Context, file string) string {
	return "/static/" + file + "?v=" + AssetVersion(ctx, file)
}
