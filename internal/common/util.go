package common

// WipeByteArray overwrites b in place. Used to clear password buffers once
// they have been handed to the backend.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
