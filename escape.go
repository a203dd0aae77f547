// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

// legalNameBytes is a bitmap of bytes allowed unescaped in a map name:
// ASCII letters and digits, "()*-/?_" and Latin-1 letters except
// U+00D7 and U+00F7.
var legalNameBytes = [32]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0xa7, 0xff, 0x83,
	0xfe, 0xff, 0xff, 0x87, 0xfe, 0xff, 0xff, 0x07,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0x7f, 0xff, 0xff, 0xff, 0x7f, 0xff,
}

// EscapeName replaces every byte of name that is not legal in a map name
// with '_', in place.
func EscapeName(name []byte) {
	for i, b := range name {
		if legalNameBytes[b/8]&(1<<(b%8)) == 0 {
			name[i] = '_'
		}
	}
}
