// Package combine merges generated header files into a single
// declarations file.
package combine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Headers concatenates every .h file directly inside dir into output,
// in name order, each wrapped in begin/end markers. The output file is
// excluded from the inputs when it already lives in dir.
func Headers(fs afero.Fs, dir, output string) error {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return errors.Wrap(err, "read dir")
	}

	outClean := filepath.Clean(output)
	headers := lo.Filter(infos, func(fi os.FileInfo, _ int) bool {
		return fi.Mode().IsRegular() &&
			strings.EqualFold(filepath.Ext(fi.Name()), ".h") &&
			filepath.Clean(filepath.Join(dir, fi.Name())) != outClean
	})
	names := lo.Map(headers, func(fi os.FileInfo, _ int) string {
		return fi.Name()
	})
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		bs, err := afero.ReadFile(fs, filepath.Join(dir, name))
		if err != nil {
			return errors.Wrapf(err, "read %s", name)
		}
		fmt.Fprintf(&buf, "// Begin content from: %s\n", name)
		buf.Write(bs)
		fmt.Fprintf(&buf, "\n// End content from: %s\n\n", name)
	}

	if err := afero.WriteFile(fs, output, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "write output")
	}

	return nil
}
