// Package conv holds allocation-free number formatting for firmware code
// that must not pull in fmt or strconv.
package conv

// AppendUint appends the base-10 digits of u to dst.
func AppendUint(dst []byte, u uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}
