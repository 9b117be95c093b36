package lheader

type (
	// Header is the fixed region at the start of every LGD file.
	Header struct {
		Identifier string `json:"identifier"`
		LogoCount  uint32 `json:"logo_count"`
	}
)

const (
	IdentifierSize = 28
	LogoCountSize  = 4
	DefaultSize    = IdentifierSize + LogoCountSize
)
