package digester

import (
	"crypto/md5"  //nolint:gosec // MD5 is one of the reported checksums
	"crypto/sha1" //nolint:gosec // SHA-1 is one of the reported checksums
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"time"
)

// DefaultChunkSize is the read size used when Digester.ChunkSize is not
// positive.
const DefaultChunkSize = 128 * 1024

// Result holds the four digests of one file and the time it took to
// compute them. Digests are lowercase hex.
type Result struct {
	Path     string  `json:"path"     yaml:"path"`
	Size     int64   `json:"size"     yaml:"size"`
	MD5      string  `json:"md5"      yaml:"md5"`
	SHA1     string  `json:"sha1"     yaml:"sha1"`
	SHA256   string  `json:"sha256"   yaml:"sha256"`
	SHA512   string  `json:"sha512"   yaml:"sha512"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// Elapsed returns Duration as a time.Duration.
func (re Result) Elapsed() time.Duration {
	return time.Duration(re.Duration * float64(time.Second))
}

// Digester computes digests reading ChunkSize bytes at a time.
type Digester struct {
	ChunkSize int
}

// Compute digests the file at path with a zero Digester.
func Compute(path string) (Result, error) {
	var dg Digester

	return dg.Compute(path)
}

// Compute opens the file at path and digests its content in one pass.
// Elapsed time covers opening, reading and finalizing. Any open or read
// failure aborts the whole computation with an *IOError.
func (dg *Digester) Compute(path string) (result Result, retErr error) {
	const errCtx = "computing digests"

	start := time.Now()

	fi, err := os.Open(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return Result{}, fmt.Errorf(
			"%s: %w", errCtx,
			&IOError{Op: "open", Path: path, Err: unwrapPathError(err)},
		)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			result = Result{}
			retErr = fmt.Errorf(
				"%s: %w", errCtx,
				&IOError{Op: "close", Path: path, Err: unwrapPathError(closeErr)},
			)
		}
	}()

	result, err = dg.digest(fi, path)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	result.Path = path
	result.Duration = time.Since(start).Seconds()

	return result, nil
}

// Sum digests everything read from r. The returned Result has an empty
// Path.
func (dg *Digester) Sum(r io.Reader) (Result, error) {
	const errCtx = "summing reader"

	start := time.Now()

	result, err := dg.digest(r, "")
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	result.Duration = time.Since(start).Seconds()

	return result, nil
}

func (dg *Digester) chunkSize() int {
	if dg.ChunkSize > 0 {
		return dg.ChunkSize
	}

	return DefaultChunkSize
}

// digest runs the read loop: one read, then every hash state is updated
// with that exact chunk before the next read.
func (dg *Digester) digest(r io.Reader, path string) (Result, error) {
	var (
		md5h    = md5.New()
		sha1h   = sha1.New()
		sha256h = sha256.New()
		sha512h = sha512.New()
		states  = []hash.Hash{md5h, sha1h, sha256h, sha512h}
		buf     = make([]byte, dg.chunkSize())
		size    int64
	)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			for _, st := range states {
				// hash.Hash.Write never returns an error.
				_, _ = st.Write(chunk) //nolint:errcheck // see above
			}

			size += int64(n)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Result{}, &IOError{
				Op:   "read",
				Path: path,
				Err:  unwrapPathError(err),
			}
		}
	}

	return Result{
		Size:   size,
		MD5:    hex.EncodeToString(md5h.Sum(nil)),
		SHA1:   hex.EncodeToString(sha1h.Sum(nil)),
		SHA256: hex.EncodeToString(sha256h.Sum(nil)),
		SHA512: hex.EncodeToString(sha512h.Sum(nil)),
	}, nil
}

// unwrapPathError strips *os.PathError so the path is not repeated in
// the IOError message.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}

	return err
}
