package pix

// crc16 computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF, no final
// XOR) over the payload bytes. Banking apps validate the code trailer
// against exactly this variant.
func crc16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
