// Package persist downloads a referenced image and writes it to disk.
package persist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/1broseidon/imagegen/internal/logging"
	"github.com/disintegration/imaging"
	"github.com/samber/lo"
	_ "golang.org/x/image/webp"
)

// DefaultMaxBytes caps the size of a downloaded image.
const DefaultMaxBytes int64 = 32 << 20

// DefaultExtension is used when the declared content type is not a known image type.
const DefaultExtension = "png"

var imageExtensions = []string{"jpeg", "jpg", "png", "gif", "webp"}

// ErrUnsupportedFormat is returned when the payload cannot be written in the
// format its content type asks for.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrTooLarge is returned when a download exceeds the configured size cap.
var ErrTooLarge = errors.New("image exceeds size limit")

// StatusError reports a download that finished with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("download %s: unexpected status %s", e.URL, e.Status)
}

// Downloader fetches images over HTTP and saves them next to a caller-chosen base path.
type Downloader struct {
	client   *http.Client
	logger   logging.Logger
	maxBytes int64
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithHTTPClient sets the client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Downloader) {
		if client != nil {
			d.client = client
		}
	}
}

// WithMaxBytes caps the number of bytes read from a download.
// Non-positive values keep DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(d *Downloader) {
		if n > 0 {
			d.maxBytes = n
		}
	}
}

// WithLogger sets the logger for the downloader.
func WithLogger(logger logging.Logger) Option {
	return func(d *Downloader) {
		d.logger = logger
	}
}

// NewDownloader returns a Downloader using http.DefaultClient unless configured otherwise.
func NewDownloader(opts ...Option) *Downloader {
	d := &Downloader{
		client:   http.DefaultClient,
		logger:   logging.Discard(),
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ExtensionFor maps a Content-Type header to a file extension.
// The subtype is used when it names a known image format, DefaultExtension otherwise.
func ExtensionFor(contentType string) string {
	subtype := contentType
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		subtype = mediaType
	}
	if i := strings.LastIndex(subtype, "/"); i >= 0 {
		subtype = subtype[i+1:]
	}
	subtype = strings.ToLower(strings.TrimSpace(subtype))

	return lo.Ternary(lo.Contains(imageExtensions, subtype), subtype, DefaultExtension)
}

// Download fetches url and saves the image to "<base>.<ext>", returning the final path.
func (d *Downloader) Download(ctx context.Context, url, base string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		d.logger.Error("Invalid image URL:", err)
		return "", fmt.Errorf("build request: %w", err)
	}

	d.logger.Debugf("Downloading image from %s", url)
	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Error("Failed to download image:", err)
		return "", fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
		d.logger.Error("Failed to download image:", err)
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBytes+1))
	if err != nil {
		d.logger.Error("Failed to read image body:", err)
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	if int64(len(data)) > d.maxBytes {
		d.logger.Errorf("Image at %s is larger than %d bytes", url, d.maxBytes)
		return "", fmt.Errorf("download %s: %w", url, ErrTooLarge)
	}

	return d.SaveBytes(data, resp.Header.Get("Content-Type"), base)
}

// SaveBytes validates data as an image and writes it to "<base>.<ext>".
// Formats with an encoder are re-encoded; WebP payloads are written as received.
func (d *Downloader) SaveBytes(data []byte, contentType, base string) (string, error) {
	ext := ExtensionFor(contentType)
	d.logger.Debugf("Content type %q maps to extension %q", contentType, ext)
	path := base + "." + ext

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		d.logger.Error("Payload is not a recognized image:", err)
		return "", fmt.Errorf("decode image: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		d.logger.Error("Failed to decode image:", err)
		return "", fmt.Errorf("decode image: %w", err)
	}

	if ext == "webp" {
		if format != "webp" {
			d.logger.Errorf("Cannot encode %s payload as webp", format)
			return "", fmt.Errorf("%w: %s payload declared as webp", ErrUnsupportedFormat, format)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			d.logger.Error("Failed to write image:", err)
			return "", fmt.Errorf("write %s: %w", path, err)
		}
	} else if err := imaging.Save(img, path); err != nil {
		d.logger.Error("Failed to save image:", err)
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	d.logger.Infof("Saved %s image to %s", format, path)
	return path, nil
}
