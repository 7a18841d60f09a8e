package heredity

// Compression indicates how (and whether) a pedigree file is compressed
type Compression uint32

const (
	CompressionDisabled Compression = iota
	CompressionGZIP
	CompressionZStandard
)

func (c Compression) String() string {
	switch c {
	case CompressionDisabled:
		return "CompressionDisabled"
	case CompressionGZIP:
		return "CompressionGZIP"
	case CompressionZStandard:
		return "CompressionZStandard"

	default:
		return "Illegal selection"
	}
}

// sniffCompression identifies the compression from a file's magic bytes.
func sniffCompression(magic []byte) Compression {
	if len(magic) >= 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		return CompressionGZIP
	}
	if len(magic) >= 4 && magic[0] == 0x28 && magic[1] == 0xb5 && magic[2] == 0x2f && magic[3] == 0xfd {
		return CompressionZStandard
	}

	return CompressionDisabled
}
