package hearth

import (
	"path/filepath"

	"github.com/hearthforge/hearth/pkg/internal"
	"github.com/jlrickert/cli-toolkit/toolkit"
)

// PathService knows where hearth keeps its files on this machine.
type PathService struct {
	// ConfigRoot is the directory holding the configuration file.
	ConfigRoot string
}

func NewPathService(rt *toolkit.Runtime) (*PathService, error) {
	root, err := internal.ConfigDir(rt, ConfigAppName)
	if err != nil {
		return nil, err
	}
	return &PathService{ConfigRoot: root}, nil
}

// Config returns the path of the configuration file.
func (s *PathService) Config() string {
	return filepath.Join(s.ConfigRoot, ConfigFileName)
}
