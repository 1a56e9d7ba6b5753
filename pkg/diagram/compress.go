package diagram

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"io"
	"net/url"
	"strings"
)

// The desktop application stores compressed diagram content as
// base64(deflateRaw(encodeURIComponent(xml))). Both transforms below are
// byte-compatible with that pipeline so exported files stay importable
// there and its files stay importable here.

// compressModel encodes one mxGraphModel subtree into the compressed
// diagram form.
func compressModel(xmlStr string) (string, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write([]byte(encodeURIComponent(xmlStr))); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decompressModel reverses compressModel. Whitespace inside the blob is
// ignored; editors wrap the base64 payload freely.
func decompressModel(blob string) (string, error) {
	compact := strings.Join(strings.Fields(blob), "")
	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", err
	}
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return decodeURIComponent(string(raw))
}

// encodeURIComponent matches the JavaScript function of the same name
// closely enough for round-tripping: query escaping with spaces as %20
// rather than '+'.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// decodeURIComponent reverses encodeURIComponent. Literal '+' is
// re-escaped first so QueryUnescape does not turn it into a space.
func decodeURIComponent(s string) (string, error) {
	return url.QueryUnescape(strings.ReplaceAll(s, "+", "%2B"))
}
