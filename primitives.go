package plog

const minInt64Str = "-9223372036854775808"

func appendInt64(dst []byte, v int64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	if v < 0 {
		if v == -1<<63 {
			return append(dst, minInt64Str...)
		}
		dst = append(dst, '-')
		v = -v
	}
	return appendUint64(dst, uint64(v))
}

func appendUint64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, tmp[i:]...)
}
