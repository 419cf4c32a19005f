package testing

import (
	"os"
	"path/filepath"
)

const DefaultTestDirRoot = "fieldsamp-test"

func DefaultTestDir() string {
	return filepath.Join(os.TempDir(), DefaultTestDirRoot)
}
