package mcnet

import "crypto/cipher"

// cfb8 is AES-128/CFB8 as the legacy protocol uses it: one byte of
// feedback per block encryption, shared secret as both key and IV.
// The stdlib CFB mode uses full-block feedback, so this is implemented
// here.
type cfb8 struct {
	block   cipher.Block
	iv      [16]byte
	scratch [16]byte
	decrypt bool
}

func newCFB8(block cipher.Block, iv []byte, decrypt bool) *cfb8 {
	c := &cfb8{block: block, decrypt: decrypt}
	copy(c.iv[:], iv)
	return c
}

// XORKeyStream transforms src into dst in place, one byte at a time.
func (c *cfb8) XORKeyStream(dst, src []byte) {
	for i := range src {
		c.block.Encrypt(c.scratch[:], c.iv[:])
		in := src[i]
		out := in ^ c.scratch[0]
		dst[i] = out
		copy(c.iv[:15], c.iv[1:])
		if c.decrypt {
			// Feedback is the ciphertext, which on decrypt is the input.
			c.iv[15] = in
		} else {
			c.iv[15] = out
		}
	}
}
