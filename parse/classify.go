package parse

// find reports whether needle is the first non-blank character of s.
// Only spaces and tabs count as blank.
func find(s string, needle byte) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == needle {
			return true
		}
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return false
}

func isObj(s string) bool { return find(s, '{') }
func isArr(s string) bool { return find(s, '[') }

// iPos returns the index at which s stops containing an integer, or -1
// when s does not begin with one.
func iPos(s string) int {
	if len(s) < 1 {
		return -1
	}
	if s[0] != '-' && !isDigit(s[0]) {
		return -1
	}
	for i := 1; i < len(s); i++ {
		if !isDigit(s[i]) {
			return i - 1
		}
	}
	return len(s) - 1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isInt(s string) bool {
	pos := iPos(s)
	return pos >= 0 && pos == len(s)-1
}

// isFloat recognizes the grammar -?digits(.digits([eE]-?digits)?|[eE]-?digits).
// A trailing '.' or a bare exponent marker is not a float.
func isFloat(s string) bool {
	pos := iPos(s)
	if pos < 0 || pos == len(s)-1 {
		return false
	}
	// 123.123 or 123.123e12
	if s[pos+1] == '.' && len(s)-1 > pos+1 {
		mid := s[pos+2:]
		midPos := iPos(mid)
		if midPos < 0 {
			return false
		}
		if midPos == len(mid)-1 {
			return true
		}
		if mid[midPos+1] == 'e' || mid[midPos+1] == 'E' {
			end := mid[midPos+2:]
			return len(end) > 0 && iPos(end) == len(end)-1
		}
		return false
	}
	// 123e12
	if (s[pos+1] == 'e' || s[pos+1] == 'E') && len(s)-1 > pos+1 {
		end := s[pos+2:]
		return len(end) > 0 && iPos(end) == len(end)-1
	}
	return false
}

// isStr reports whether s is a quoted string: opening quote, no
// unescaped quote until the closing one, which must be the last
// character.
func isStr(s string) bool {
	if len(s) < 1 {
		return false
	}
	if s[0] != '"' {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		if s[i] == '"' && s[i-1] != '\\' {
			return false
		}
	}
	return s[len(s)-1] == '"'
}

func isBool(s string) bool {
	return s == "true" || s == "false"
}

func isNull(s string) bool {
	return s == "null"
}

// stripQuotes removes one ' or " at the beginning and end of s, e.g.
// "abc" => abc and ""abc" => "abc.
func stripQuotes(s string) string {
	if len(s) > 0 && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	return s
}
