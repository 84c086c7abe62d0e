package message

import "io"

// ReadBodyString drains b's reader to completion and returns it as a
// string. Used by handlers and tests that want the whole body regardless
// of how it is backed.
func ReadBodyString(b Body) (string, error) {
	if buf, ok := b.Bytes(); ok {
		return string(buf), nil
	}
	data, err := io.ReadAll(b.Reader())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
