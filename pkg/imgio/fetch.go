package imgio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

func NewFetcher() *Fetcher {
	return &Fetcher{
		cli: resty.New().SetDoNotParseResponse(true),
	}
}

type Fetcher struct {
	cli *resty.Client
}

// Fetch downloads a remote image into memory.
func (f *Fetcher) Fetch(rawURL string) ([]byte, error) {
	resp, err := f.cli.R().Get(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "fetch image")
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() >= 400 {
		return nil, errors.Errorf("fetch image: %s", resp.Status())
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", rawURL))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, errors.Wrap(err, "fetch image")
	}

	return buf.Bytes(), nil
}
