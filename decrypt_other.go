//go:build !darwin && !linux && !windows

package browserdump

import "time"

func cookieDecryptor(_ browserVendor, _ Profile, _ time.Duration) (decryptFunc, []string) {
	return nil, []string{"browserdump: cookie value decryption unsupported on this OS"}
}
