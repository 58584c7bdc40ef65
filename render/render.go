package render

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/multidigest/digester"
)

// Format names an output representation.
type Format string

// Supported formats.
const (
	FormatHTML Format = "html"
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format name Render does not know.
var ErrUnknownFormat = errors.New("unknown format")

// htmlTemplate is the block the desktop UI displays, whitespace included.
const htmlTemplate = "\n" +
	"        <b>文件</b>: {{path}}<br><br>\n" +
	"        用时: {{duration}}秒<br><br>\n" +
	"        <b>MD5</b>: {{md5}}<br>\n" +
	"        <b>SHA-1</b>: {{sha1}}<br>\n" +
	"        <b>SHA-256</b>: {{sha256}}<br>\n" +
	"        <b>SHA-512</b>: {{sha512}}<br>\n" +
	"        "

const textTemplate = "File: {{path}}\n" +
	"Elapsed: {{duration}}s\n" +
	"\n" +
	"MD5:     {{md5}}\n" +
	"SHA-1:   {{sha1}}\n" +
	"SHA-256: {{sha256}}\n" +
	"SHA-512: {{sha512}}\n"

var (
	htmlTpl = fasttemplate.New(htmlTemplate, "{{", "}}")
	textTpl = fasttemplate.New(textTemplate, "{{", "}}")
)

// ParseFormat maps a user supplied name to a Format. Matching ignores
// case and surrounding spaces.
func ParseFormat(name string) (Format, error) {
	switch fo := Format(strings.ToLower(strings.TrimSpace(name))); fo {
	case FormatHTML, FormatText, FormatJSON, FormatYAML:
		return fo, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Render formats re according to fo.
func Render(fo Format, re digester.Result) (string, error) {
	const errCtx = "rendering result"

	switch fo {
	case FormatHTML:
		return HTML(re), nil
	case FormatText:
		return Text(re), nil
	case FormatJSON:
		by, err := JSON(re)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		return string(by), nil
	case FormatYAML:
		by, err := YAML(re)
		if err != nil {
			return "", fmt.Errorf("%s: %w", errCtx, err)
		}

		return string(by), nil
	default:
		return "", fmt.Errorf("%s: %w: %q", errCtx, ErrUnknownFormat, fo)
	}
}

// HTML renders the labelled block used by the desktop UI. The path is
// escaped; digests are hex and need no escaping.
func HTML(re digester.Result) string {
	return htmlTpl.ExecuteString(fields(re, html.EscapeString(re.Path)))
}

// Text renders the same block with newlines instead of markup.
func Text(re digester.Result) string {
	return textTpl.ExecuteString(fields(re, re.Path))
}

// JSON encodes re as indented JSON terminated by a newline.
func JSON(re digester.Result) ([]byte, error) {
	const errCtx = "encoding json"

	by, err := json.MarshalIndent(re, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return append(by, '\n'), nil
}

// YAML encodes re as a single YAML document.
func YAML(re digester.Result) ([]byte, error) {
	const errCtx = "encoding yaml"

	by, err := yaml.Marshal(re)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return by, nil
}

// FormatDuration prints seconds with exactly three decimals.
func FormatDuration(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

func fields(re digester.Result, path string) map[string]interface{} {
	return map[string]interface{}{
		"path":     path,
		"duration": FormatDuration(re.Duration),
		"md5":      re.MD5,
		"sha1":     re.SHA1,
		"sha256":   re.SHA256,
		"sha512":   re.SHA512,
	}
}
