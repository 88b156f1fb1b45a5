package ingest

import "errors"

// ErrBadArchive indicates the uploaded bytes could not be extracted (corrupt
// zip, unsupported compression, or a filesystem write failure).
var ErrBadArchive = errors.New("bad course archive")
