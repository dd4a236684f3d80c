package scanner

import "strconv"

// number scans a decimal, 0x-prefixed hex, or 0-prefixed octal integer
// literal (spec §6). Float literals are not part of this language.
func (s *Scanner) number() (raw string, val int32) {
	start := s.off

	base := 10
	if s.cur == '0' {
		s.advance()
		switch {
		case s.cur == 'x' || s.cur == 'X':
			base = 16
			s.advance()
			for isHexDigit(s.cur) {
				s.advance()
			}
		case isDigit(s.cur):
			base = 8
			for isDigit(s.cur) {
				s.advance()
			}
		default:
			// bare "0"
		}
	} else {
		for isDigit(s.cur) {
			s.advance()
		}
	}

	lit := string(s.src[start:s.off])
	text := lit
	switch base {
	case 16:
		text = lit[2:]
	case 8:
		if len(lit) > 1 {
			text = lit[1:]
		} else {
			text = "0"
			base = 10
		}
	}
	if text == "" {
		s.error(start, "malformed number literal")
		return lit, 0
	}
	v, err := strconv.ParseUint(text, base, 32)
	if err != nil {
		s.error(start, "integer literal value out of range")
	}
	return lit, int32(v)
}

func isHexDigit(rn rune) bool {
	return isDigit(rn) || 'a' <= rn && rn <= 'f' || 'A' <= rn && rn <= 'F'
}
