// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/xatom"
)

// counter is the global monotonic counter for connection identities.
var counter atomix.Uint32

// nextID returns the next monotonically increasing connection identity.
// Identities start at 1.
func nextID() xatom.ConnID {
	return counter.Add(1)
}
