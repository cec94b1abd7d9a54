package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata discovered while loading a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory rather than
	// read from disk (a test fixture, stdin, or generated source).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 byte order mark was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF indicates one or more CRLF sequences were
	// collapsed to LF on load.
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
