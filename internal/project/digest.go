package project

import "crypto/sha256"

// Digest is a fixed 256-bit content hash.
type Digest [32]byte

// DigestBytes hashes raw file content.
func DigestBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// DigestLines hashes a line fragment as H(line1 || '\n' || line2 || '\n' ...),
// so reordering or editing any line changes the digest.
func DigestLines(lines []string) Digest {
	h := sha256.New()
	for _, line := range lines {
		_, _ = h.Write([]byte(line))
		_, _ = h.Write([]byte{'\n'})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
