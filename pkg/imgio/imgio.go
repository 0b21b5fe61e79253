// Package imgio handles the input side of the converters: extension
// checks, directory listings, decoding and remote fetches.
package imgio

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

var imageExts = []string{".png", ".jpg", ".jpeg"}

// Supported reports whether name carries one of the raster extensions
// the converters accept.
func Supported(name string) bool {
	return lo.Contains(imageExts, strings.ToLower(filepath.Ext(name)))
}

// ListImages returns the names of the supported files directly inside
// dir, sorted lexicographically. The walk is non-recursive.
func ListImages(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrap(err, "read dir")
	}

	files := lo.Filter(infos, func(fi os.FileInfo, _ int) bool {
		return fi.Mode().IsRegular() && Supported(fi.Name())
	})
	names := lo.Map(files, func(fi os.FileInfo, _ int) string {
		return fi.Name()
	})
	sort.Strings(names)

	return names, nil
}

// Decode reads and decodes a single image file.
func Decode(fs afero.Fs, file string) (image.Image, error) {
	bs, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, errors.Wrap(err, "read image")
	}
	return DecodeBytes(bs)
}

// DecodeBytes decodes an in-memory PNG/JPEG/GIF.
func DecodeBytes(bs []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	return img, nil
}

// IsURL reports whether input names a remote image rather than a local
// path.
func IsURL(input string) bool {
	u, err := url.Parse(input)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// BaseName returns the file name without extension for either a local
// path or an http(s) URL.
func BaseName(input string) string {
	base := filepath.Base(input)
	if u, err := url.Parse(input); err == nil && u.Scheme != "" {
		base = path.Base(u.Path)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
