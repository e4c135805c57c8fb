// Copyright 2025, Pype Club and the OpenPype website contributors
// SPDX-License-Identifier: AGPL-3.0-only

package export

import (
	"bytes"
	"path"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"
)

// compressibleExts are the text formats worth storing precompressed.
var compressibleExts = map[string]bool{
	".html": true,
	".css":  true,
	".js":   true,
	".json": true,
	".svg":  true,
	".txt":  true,
	".xml":  true,
}

func isCompressible(name string) bool {
	return compressibleExts[path.Ext(name)]
}

type encodedVariant struct {
	ext  string
	data []byte
}

// precompress returns the gzip and zstd encodings of data, skipping any that
// would not be smaller than the original.
func (e *Exporter) precompress(data []byte) []encodedVariant {
	var variants []encodedVariant

	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err == nil {
		_, err = zw.Write(data)
		if closeErr := zw.Close(); err == nil {
			err = closeErr
		}
	}

	switch {
	case err != nil:
		log.Warn().Err(err).Msg("Failed to gzip file, skipping")
	case buf.Len() < len(data):
		variants = append(variants, encodedVariant{ext: ".gz", data: buf.Bytes()})
	}

	if zst := e.zstdEnc.EncodeAll(data, nil); len(zst) < len(data) {
		variants = append(variants, encodedVariant{ext: ".zst", data: zst})
	}

	return variants
}
