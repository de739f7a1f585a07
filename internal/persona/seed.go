package persona

import (
	"crypto/md5"
	"encoding/binary"
)

// DeriveSeed maps an arbitrary string to a 32-bit generation seed. It is a
// pure function: the same string yields the same seed on every run and in
// every process. The mapping is md5(input) reduced mod 2^32, which equals
// the big-endian value of the digest's last four bytes.
func DeriveSeed(input string) uint32 {
	sum := md5.Sum([]byte(input))
	return binary.BigEndian.Uint32(sum[12:16])
}
