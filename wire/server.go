// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"sync"

	"code.hybscloud.com/xatom"
	"fortio.org/safecast"
)

// predefined are the atoms every server knows, numbered from 1.
var predefined = [...]string{
	"PRIMARY", "SECONDARY", "ARC", "ATOM", "BITMAP", "CARDINAL", "COLORMAP",
	"CURSOR", "CUT_BUFFER0", "CUT_BUFFER1", "CUT_BUFFER2", "CUT_BUFFER3",
	"CUT_BUFFER4", "CUT_BUFFER5", "CUT_BUFFER6", "CUT_BUFFER7", "DRAWABLE",
	"FONT", "INTEGER", "PIXMAP", "POINT", "RECTANGLE", "RESOURCE_MANAGER",
	"RGB_COLOR_MAP", "RGB_BEST_MAP", "RGB_BLUE_MAP", "RGB_DEFAULT_MAP",
	"RGB_GRAY_MAP", "RGB_GREEN_MAP", "RGB_RED_MAP", "STRING", "VISUALID",
	"WINDOW", "WM_COMMAND", "WM_HINTS", "WM_CLIENT_MACHINE", "WM_ICON_NAME",
	"WM_ICON_SIZE", "WM_NAME", "WM_NORMAL_HINTS", "WM_SIZE_HINTS",
	"WM_ZOOM_HINTS", "MIN_SPACE", "NORM_SPACE", "MAX_SPACE", "END_SPACE",
	"SUPERSCRIPT_X", "SUPERSCRIPT_Y", "SUBSCRIPT_X", "SUBSCRIPT_Y",
	"UNDERLINE_POSITION", "UNDERLINE_THICKNESS", "STRIKEOUT_ASCENT",
	"STRIKEOUT_DESCENT", "ITALIC_ANGLE", "X_HEIGHT", "QUAD_WIDTH", "WEIGHT",
	"POINT_SIZE", "RESOLUTION", "COPYRIGHT", "NOTICE", "FONT_NAME",
	"FAMILY_NAME", "FULL_NAME", "CAP_HEIGHT", "WM_CLASS", "WM_TRANSIENT_FOR",
}

// LastPredefined is the highest predefined atom.
const LastPredefined xatom.Atom = xatom.Atom(len(predefined))

// Server is an in-process atom namespace.
// Atoms are global to the server and never freed. Safe for concurrent use.
type Server struct {
	mu      sync.RWMutex
	names   []string
	index   map[string]xatom.Atom
	failing map[xatom.Atom]error
}

// NewServer returns a server holding only the predefined atoms.
func NewServer() *Server {
	s := &Server{
		names:   make([]string, 0, len(predefined)),
		index:   make(map[string]xatom.Atom, len(predefined)),
		failing: make(map[xatom.Atom]error),
	}
	for _, name := range predefined {
		s.names = append(s.names, name)
		s.index[name] = xatom.Atom(len(s.names))
	}
	return s
}

// InternAtom returns the atom for name, creating it unless onlyIfExists is
// set. With onlyIfExists, an unknown name yields None and no error.
func (s *Server) InternAtom(name string, onlyIfExists bool) (xatom.Atom, error) {
	if name == "" {
		return xatom.None, ErrBadValue
	}
	if _, err := safecast.Conv[uint16](len(name)); err != nil {
		return xatom.None, fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(name))
	}

	s.mu.RLock()
	atom, ok := s.index[name]
	s.mu.RUnlock()
	if ok || onlyIfExists {
		return atom, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if atom, ok := s.index[name]; ok {
		return atom, nil
	}
	n, err := safecast.Conv[uint32](len(s.names) + 1)
	if err != nil {
		return xatom.None, fmt.Errorf("wire: atom space exhausted: %w", err)
	}
	s.names = append(s.names, name)
	atom = xatom.Atom(n)
	s.index[name] = atom
	return atom, nil
}

// AtomName returns the name of atom.
func (s *Server) AtomName(atom xatom.Atom) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err, ok := s.failing[atom]; ok {
		return "", fmt.Errorf("wire: atom %d: %w", atom, err)
	}
	if atom == xatom.None || int(atom) > len(s.names) {
		return "", fmt.Errorf("wire: atom %d: %w", atom, ErrBadAtom)
	}
	return s.names[atom-1], nil
}

// Fail makes every later name lookup of atom fail with err.
// A nil err restores normal replies.
func (s *Server) Fail(atom xatom.Atom, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failing, atom)
		return
	}
	s.failing[atom] = err
}

// Len returns the number of atoms, predefined ones included.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}
