// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "errors"

var (
	// ErrBadAtom is returned for atoms the server does not know.
	ErrBadAtom = errors.New("wire: bad atom")
	// ErrBadValue is returned for an empty atom name.
	ErrBadValue = errors.New("wire: bad value")
	// ErrNameTooLong is returned for names that do not fit a CARD16 length.
	ErrNameTooLong = errors.New("wire: atom name too long")
	// ErrClosed is returned for requests issued after Close.
	ErrClosed = errors.New("wire: connection closed")
	// ErrBadCookie is returned when waiting on a cookie that was never
	// issued or whose reply was already consumed.
	ErrBadCookie = errors.New("wire: bad cookie")
)
