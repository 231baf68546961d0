package installer

import "github.com/sandevgo/secretowatch/internal/config"

type InstallState struct {
	Env *config.EnvFile
	// RuntimePath is where .env is written
	RuntimePath string
	// EnvPath is set once the file has been saved
	EnvPath string
}

func NewInstallState(runtimePath string) *InstallState {
	return &InstallState{
		Env:         &config.EnvFile{},
		RuntimePath: runtimePath,
	}
}
