package krc

// key is the repeating XOR mask applied to every KRC body.
var key = [16]byte{
	0x40, 0x47, 0x61, 0x77, 0x5e, 0x32, 0x74, 0x47,
	0x51, 0x36, 0x31, 0x2d, 0xce, 0xd2, 0x6e, 0x69,
}

// Deobfuscate removes the XOR mask from body and returns a new slice.
//
// body is the file content after the 4-byte header. The transform is its
// own inverse, so applying it twice returns the input.
func Deobfuscate(body []byte) []byte {
	out := make([]byte, len(body))
	for i, b := range body {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}
