package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces random identifiers for trace ids and stored file
// names.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a random (version 4) UUID in its canonical form.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// FileName returns a random 32 character hex name with ext appended
// (e.g. "3f2b...9c.png"). The client-supplied name never contributes to it,
// so it can neither overwrite another upload nor escape the target directory.
func (g *UUIDGenerator) FileName(ext string) string {
	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	if ext == "" {
		return name
	}
	return name + "." + ext
}
